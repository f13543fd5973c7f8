package services

import (
	"context"

	"talenthive_backend/internal/ai"
	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
	"talenthive_backend/pkg/apperrors"
)

// JobMatcher ranks candidate jobs against a skill set.
type JobMatcher interface {
	MatchJobs(ctx context.Context, req ai.MatchJobsRequest) (*ai.MatchJobsResponse, error)
}

type MatchingService interface {
	RecommendedJobs(ctx context.Context, userID string) ([]map[string]interface{}, int64, error)
}

type MatchingServiceImpl struct {
	users        repositories.UserRepository
	jobs         repositories.JobRepository
	applications repositories.ApplicationRepository
	matcher      JobMatcher
}

func NewMatchingService(
	users repositories.UserRepository,
	jobs repositories.JobRepository,
	applications repositories.ApplicationRepository,
	matcher JobMatcher,
) MatchingService {
	return &MatchingServiceImpl{users: users, jobs: jobs, applications: applications, matcher: matcher}
}

// experienceYears maps an experience level to the minimum years the matcher
// scores against.
func experienceYears(level models.ExperienceLevel) int {
	switch level {
	case models.ExperienceMid:
		return 3
	case models.ExperienceSenior:
		return 5
	case models.ExperienceExecutive:
		return 8
	default:
		// Entry Level, Internship, Fresher and anything unknown.
		return 0
	}
}

// RecommendedJobs sends the jobseeker's profile plus all active jobs they
// have not applied to through the matcher and returns its ranking verbatim,
// along with the system-wide active job count for the frontend counter.
func (s *MatchingServiceImpl) RecommendedJobs(ctx context.Context, userID string) ([]map[string]interface{}, int64, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, 0, apperrors.ErrUserNotFound
		}
		return nil, 0, apperrors.InternalError(err)
	}

	skills := models.SkillsFromJSON(user.Skills)
	if len(skills) == 0 {
		return nil, 0, apperrors.NewValidationError("Please complete your profile with skills to get job recommendations")
	}

	total, err := s.jobs.CountActive(ctx)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	appliedIDs, err := s.applications.JobIDsByUser(ctx, userID)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	jobs, err := s.jobs.FindActiveExcluding(ctx, appliedIDs)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	if len(jobs) == 0 {
		return []map[string]interface{}{}, total, nil
	}

	candidates := make([]ai.JobForMatching, 0, len(jobs))
	for i := range jobs {
		candidates = append(candidates, ai.JobForMatching{
			ID:         jobs[i].ID,
			Title:      jobs[i].Title,
			Skills:     models.SkillsFromJSON(jobs[i].Skills),
			Experience: experienceYears(jobs[i].Experience),
		})
	}

	resp, err := s.matcher.MatchJobs(ctx, ai.MatchJobsRequest{
		Skills:     skills,
		Experience: experienceYears(models.ExperienceLevel(user.Experience)),
		Jobs:       candidates,
	})
	if err != nil {
		return nil, 0, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "matching",
			"Job matching service unavailable", 500)
	}

	if resp.MatchedJobs == nil {
		return []map[string]interface{}{}, total, nil
	}
	return resp.MatchedJobs, total, nil
}
