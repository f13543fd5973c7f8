package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"talenthive_backend/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id string) (*models.Job, error)
	FindByIDWithDetails(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Job, error)
	Delete(ctx context.Context, id string) error
	FindByEmployer(ctx context.Context, employerID string, offset, limit int) ([]models.Job, error)
	CountActive(ctx context.Context) (int64, error)
	FindActiveExcluding(ctx context.Context, jobIDs []string) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Job, error) {
	result := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

// FindByIDWithDetails loads the job plus its employer and all applications
// with their applicants, for the single-job view.
func (r *JobRepositoryImpl) FindByIDWithDetails(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		Preload("Applications").
		Preload("Applications.User").
		First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// FindByEmployer returns one page of the employer's jobs, newest first.
func (r *JobRepositoryImpl) FindByEmployer(ctx context.Context, employerID string, offset, limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

// FindActiveExcluding returns active jobs the given job IDs are not part of,
// used to keep already-applied jobs out of recommendations.
func (r *JobRepositoryImpl) FindActiveExcluding(ctx context.Context, jobIDs []string) ([]models.Job, error) {
	var jobs []models.Job
	query := r.db.WithContext(ctx).Where("is_active = ?", true)
	if len(jobIDs) > 0 {
		query = query.Where("id NOT IN ?", jobIDs)
	}
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
