package services

import (
	"context"
	"strings"

	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
	"talenthive_backend/internal/services/dto"
	"talenthive_backend/pkg/apperrors"
)

type JobService interface {
	Create(ctx context.Context, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, employerID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, employerID, jobID string) error
	GetJob(ctx context.Context, jobID string) (*dto.JobDetailResponse, error)
	GetJobs(ctx context.Context, employerID string, page, limit int) (*dto.JobListResult, error)
}

type JobServiceImpl struct {
	jobs repositories.JobRepository
}

func NewJobService(jobs repositories.JobRepository) JobService {
	return &JobServiceImpl{jobs: jobs}
}

// Create validates all required fields at once so the client gets the full
// list of omissions in a single response.
func (s *JobServiceImpl) Create(ctx context.Context, employerID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	var missing []string
	if req.Title == "" {
		missing = append(missing, "title")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if len(req.Skills) == 0 {
		missing = append(missing, "skills")
	}
	if req.Experience == "" {
		missing = append(missing, "experience")
	}
	if req.JobType == "" {
		missing = append(missing, "jobType")
	}
	if req.Location == "" {
		missing = append(missing, "location")
	}
	if req.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if req.Salary == 0 {
		missing = append(missing, "salary")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	job := &models.Job{
		Title:       req.Title,
		Description: req.Description,
		Skills:      models.SkillsToJSON(req.Skills),
		Experience:  models.ExperienceLevel(req.Experience),
		JobType:     models.JobType(req.JobType),
		Location:    req.Location,
		CompanyName: req.CompanyName,
		Salary:      req.Salary,
		IsActive:    true,
		EmployerID:  employerID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(job), nil
}

func (s *JobServiceImpl) Update(ctx context.Context, employerID, jobID string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return nil, apperrors.ErrNotJobOwnerUpdate
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Skills != nil {
		fields["skills"] = models.SkillsToJSON(req.Skills)
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.JobType != nil {
		fields["job_type"] = *req.JobType
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.Salary != nil {
		fields["salary"] = *req.Salary
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if len(fields) == 0 {
		return dto.NewJobResponse(job), nil
	}

	updated, err := s.jobs.Update(ctx, jobID, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobResponse(updated), nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, employerID, jobID string) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if job.EmployerID != employerID {
		return apperrors.ErrNotJobOwnerDelete
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// GetJob returns the job with its employer and every application's
// applicant populated for the single-job view.
func (s *JobServiceImpl) GetJob(ctx context.Context, jobID string) (*dto.JobDetailResponse, error) {
	job, err := s.jobs.FindByIDWithDetails(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewJobDetailResponse(job), nil
}

// GetJobs returns one page of the employer's own jobs. Total is the count of
// active jobs across the whole system, not the caller's, the frontend
// counter depends on that.
func (s *JobServiceImpl) GetJobs(ctx context.Context, employerID string, page, limit int) (*dto.JobListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	jobs, err := s.jobs.FindByEmployer(ctx, employerID, (page-1)*limit, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.jobs.CountActive(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.JobListResult{
		Jobs:  dto.NewJobResponseList(jobs),
		Total: total,
	}, nil
}
