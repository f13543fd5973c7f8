package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"talenthive_backend/internal/models"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("duplicate application")
)

// ApplicationRow is one application joined with its job and applicant,
// scanned flat so list endpoints avoid N+1 preloads.
type ApplicationRow struct {
	ID          string
	JobID       string
	UserID      string
	Status      models.ApplicationStatus
	CoverLetter string
	Resume      string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	JobTitle       string
	JobCompanyName string
	JobLocation    string
	JobExperience  models.ExperienceLevel
	JobType        models.JobType
	JobSalary      float64
	JobIsActive    bool
	JobEmployerID  string

	UserName  string
	UserEmail string
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
	FindByID(ctx context.Context, id string) (*models.Application, error)
	ExistsByJobAndUser(ctx context.Context, jobID, userID string) (bool, error)
	JobIDsByUser(ctx context.Context, userID string) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
	FindByUserWithDetails(ctx context.Context, userID string) ([]ApplicationRow, error)
	FindByEmployerWithDetails(ctx context.Context, employerID string) ([]ApplicationRow, error)
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(ctx context.Context, app *models.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsByJobAndUser(ctx context.Context, jobID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) JobIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("user_id = ?", userID).
		Pluck("job_id", &ids).Error
	return ids, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}
	return r.FindByID(ctx, id)
}

const applicationJoinSelect = `
	applications.id, applications.job_id, applications.user_id,
	applications.status, applications.cover_letter, applications.resume,
	applications.created_at, applications.updated_at,
	jobs.title AS job_title, jobs.company_name AS job_company_name,
	jobs.location AS job_location, jobs.experience AS job_experience,
	jobs.job_type AS job_type,
	jobs.salary AS job_salary, jobs.is_active AS job_is_active,
	jobs.employer_id AS job_employer_id,
	users.name AS user_name, users.email AS user_email`

func (r *ApplicationRepositoryImpl) FindByUserWithDetails(ctx context.Context, userID string) ([]ApplicationRow, error) {
	var rows []ApplicationRow
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Select(applicationJoinSelect).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN users ON users.id = applications.user_id").
		Where("applications.user_id = ?", userID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

// FindByEmployerWithDetails lists applications across all of an employer's
// jobs, filtered through the joined jobs table.
func (r *ApplicationRepositoryImpl) FindByEmployerWithDetails(ctx context.Context, employerID string) ([]ApplicationRow, error) {
	var rows []ApplicationRow
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Select(applicationJoinSelect).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Joins("JOIN users ON users.id = applications.user_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func isUniqueViolation(err error) bool {
	// Postgres unique_violation is SQLSTATE 23505. Matching on the message
	// avoids a direct pgconn dependency here.
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}
