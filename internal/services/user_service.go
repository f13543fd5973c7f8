package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"talenthive_backend/internal/ai"
	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
	"talenthive_backend/internal/services/dto"
	"talenthive_backend/internal/storage"
	"talenthive_backend/pkg/apperrors"
)

// ResumeParser extracts skills and experience from an uploaded resume.
type ResumeParser interface {
	ParseResume(ctx context.Context, fileURL string) (*ai.ParseResumeResponse, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	SetJobseekerProfile(ctx context.Context, userID string, req *dto.JobseekerProfileRequest) (*dto.UserResponse, error)
	SetEmployerProfile(ctx context.Context, userID string, req *dto.EmployerProfileRequest) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	users  repositories.UserRepository
	files  storage.Storage
	parser ResumeParser
}

func NewUserService(users repositories.UserRepository, files storage.Storage, parser ResumeParser) UserService {
	return &UserServiceImpl{users: users, files: files, parser: parser}
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// SetJobseekerProfile stores the resume file, runs it through the resume
// parser and saves the profile. Phone, location and the file are all
// required; the parser's output fills skills and experience.
func (s *UserServiceImpl) SetJobseekerProfile(ctx context.Context, userID string, req *dto.JobseekerProfileRequest) (*dto.UserResponse, error) {
	var missing []string
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Location == "" {
		missing = append(missing, "location")
	}
	if req.ResumeFile == nil {
		missing = append(missing, "file")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	resumeURL, err := s.uploadResume(ctx, userID, req.ResumeFile)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.ParseResume(ctx, resumeURL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "parser",
			"Failed to parse resume", 500)
	}

	fields := map[string]interface{}{
		"resume":     resumeURL,
		"skills":     models.SkillsToJSON(parsed.Skills),
		"experience": parsed.Experience,
		"phone":      req.Phone,
		"location":   req.Location,
	}

	user, err := s.users.UpdateJobseekerProfile(ctx, userID, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// SetEmployerProfile persists the company and contact fields, all of which
// are required.
func (s *UserServiceImpl) SetEmployerProfile(ctx context.Context, userID string, req *dto.EmployerProfileRequest) (*dto.UserResponse, error) {
	var missing []string
	if req.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	if req.CompanySize == "" {
		missing = append(missing, "companySize")
	}
	if req.Industry == "" {
		missing = append(missing, "industry")
	}
	if req.Description == "" {
		missing = append(missing, "description")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}
	if req.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError("Missing required fields: " + strings.Join(missing, ", "))
	}

	fields := map[string]interface{}{
		"company_name": req.CompanyName,
		"company_size": req.CompanySize,
		"industry":     req.Industry,
		"description":  req.Description,
		"phone":        req.Phone,
		"location":     req.Location,
	}

	user, err := s.users.UpdateEmployerProfile(ctx, userID, fields)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserServiceImpl) uploadResume(ctx context.Context, userID string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", apperrors.NewBadRequestError("Could not read uploaded resume")
	}
	defer f.Close()

	ext := filepath.Ext(fh.Filename)
	key := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), ext)

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.files.Save(ctx, key, f, fh.Size, contentType); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternalError, "storage", "Failed to store resume", 500)
	}
	return s.files.GetURL(key), nil
}
