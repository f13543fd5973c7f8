package services

import (
	"context"

	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
	"talenthive_backend/internal/services/dto"
	"talenthive_backend/pkg/apperrors"
)

type ApplicationService interface {
	Apply(ctx context.Context, userID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error)
	MyApplications(ctx context.Context, userID string) ([]dto.ApplicationWithJob, error)
	EmployerApplications(ctx context.Context, employerID string) ([]dto.ApplicationWithJobAndUser, error)
}

type ApplicationServiceImpl struct {
	applications repositories.ApplicationRepository
	jobs         repositories.JobRepository
	users        repositories.UserRepository
}

func NewApplicationService(
	applications repositories.ApplicationRepository,
	jobs repositories.JobRepository,
	users repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{applications: applications, jobs: jobs, users: users}
}

func (s *ApplicationServiceImpl) Apply(ctx context.Context, userID, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !job.IsActive {
		return nil, apperrors.ErrJobInactive
	}

	exists, err := s.applications.ExistsByJobAndUser(ctx, jobID, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	// An explicit resume in the request wins, otherwise the application
	// snapshots the one on the jobseeker profile.
	resume := req.Resume
	if resume == "" {
		user, err := s.users.FindByID(ctx, userID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.InternalError(err)
		}
		resume = user.Resume
	}
	if resume == "" {
		return nil, apperrors.NewValidationError("Please upload your resume before applying")
	}

	app := &models.Application{
		JobID:       jobID,
		UserID:      userID,
		Status:      models.ApplicationStatusApplied,
		CoverLetter: req.CoverLetter,
		Resume:      resume,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		// The unique index closes the race between the existence check and
		// the insert.
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplicationResponse{
		ID:          app.ID,
		Job:         app.JobID,
		User:        app.UserID,
		Status:      string(app.Status),
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		CreatedAt:   app.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		UpdatedAt:   app.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}, nil
}

// UpdateStatus writes any known status. Route-level role gating restricts
// this to employers; per-job ownership is intentionally not enforced here.
func (s *ApplicationServiceImpl) UpdateStatus(ctx context.Context, applicationID string, req *dto.UpdateApplicationStatusRequest) (*dto.ApplicationResponse, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.ErrInvalidApplicationStatus
	}

	app, err := s.applications.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.ApplicationResponse{
		ID:          app.ID,
		Job:         app.JobID,
		User:        app.UserID,
		Status:      string(app.Status),
		CoverLetter: app.CoverLetter,
		Resume:      app.Resume,
		CreatedAt:   app.CreatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
		UpdatedAt:   app.UpdatedAt.UTC().Format("2006-01-02T15:04:05.000Z"),
	}, nil
}

func (s *ApplicationServiceImpl) MyApplications(ctx context.Context, userID string) ([]dto.ApplicationWithJob, error) {
	rows, err := s.applications.FindByUserWithDetails(ctx, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationWithJobList(rows), nil
}

func (s *ApplicationServiceImpl) EmployerApplications(ctx context.Context, employerID string) ([]dto.ApplicationWithJobAndUser, error) {
	rows, err := s.applications.FindByEmployerWithDetails(ctx, employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewApplicationWithJobAndUserList(rows), nil
}
