package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthive_backend/internal/ai"
	"talenthive_backend/internal/models"
	"talenthive_backend/pkg/apperrors"
)

func TestExperienceYears(t *testing.T) {
	t.Parallel()

	cases := map[models.ExperienceLevel]int{
		models.ExperienceEntry:      0,
		models.ExperienceInternship: 0,
		models.ExperienceFresher:    0,
		models.ExperienceMid:        3,
		models.ExperienceSenior:     5,
		models.ExperienceExecutive:  8,
		models.ExperienceLevel(""):  0,
	}
	for level, want := range cases {
		assert.Equal(t, want, experienceYears(level), "level %q", level)
	}
}

func TestRecommendedJobs(t *testing.T) {
	t.Parallel()

	newFixture := func() (*fakeUserRepo, *fakeJobRepo, *fakeApplicationRepo, *fakeMatcher, MatchingService) {
		users := newFakeUserRepo()
		jobs := newFakeJobRepo()
		apps := newFakeApplicationRepo(jobs, users)
		matcher := &fakeMatcher{}
		svc := NewMatchingService(users, jobs, apps, matcher)
		return users, jobs, apps, matcher, svc
	}

	t.Run("profile without skills is rejected", func(t *testing.T) {
		t.Parallel()
		users, _, _, _, svc := newFixture()
		user := users.add(&models.User{Role: models.UserRoleJobseeker})

		_, _, err := svc.RecommendedJobs(context.Background(), user.ID)
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, 400, appErr.HTTPCode)
	})

	t.Run("applied and inactive jobs are excluded from candidates", func(t *testing.T) {
		t.Parallel()
		users, jobs, _, matcher, svc := newFixture()
		user := users.add(&models.User{
			Role:       models.UserRoleJobseeker,
			Skills:     models.SkillsToJSON([]string{"Go"}),
			Experience: "Senior Level",
			Resume:     "/api/files/r.pdf",
		})
		applied := jobs.add(&models.Job{Title: "Applied", EmployerID: "e", IsActive: true, Experience: models.ExperienceMid})
		jobs.add(&models.Job{Title: "Open", EmployerID: "e", IsActive: true, Experience: models.ExperienceEntry})
		jobs.add(&models.Job{Title: "Closed", EmployerID: "e", IsActive: false})

		apps := newFakeApplicationRepo(jobs, users)
		require.NoError(t, apps.Create(context.Background(), &models.Application{
			JobID:  applied.ID,
			UserID: user.ID,
			Status: models.ApplicationStatusApplied,
		}))
		svc = NewMatchingService(users, jobs, apps, matcher)

		_, total, err := svc.RecommendedJobs(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)

		require.NotNil(t, matcher.lastReq)
		require.Len(t, matcher.lastReq.Jobs, 1)
		assert.Equal(t, "Open", matcher.lastReq.Jobs[0].Title)
		assert.Equal(t, []string{"Go"}, matcher.lastReq.Skills)
		assert.Equal(t, 5, matcher.lastReq.Experience)
	})

	t.Run("matcher ranking is returned verbatim", func(t *testing.T) {
		t.Parallel()
		users, jobs, apps, matcher, _ := newFixture()
		user := users.add(&models.User{
			Role:   models.UserRoleJobseeker,
			Skills: models.SkillsToJSON([]string{"Go"}),
		})
		jobs.add(&models.Job{Title: "Open", EmployerID: "e", IsActive: true})

		matcher.response = &ai.MatchJobsResponse{
			MatchedJobs: []map[string]interface{}{
				{"_id": "job-1", "title": "Open", "match_score": 87.5},
			},
		}
		svc := NewMatchingService(users, jobs, apps, matcher)

		matched, total, err := svc.RecommendedJobs(context.Background(), user.ID)
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, 87.5, matched[0]["match_score"])
	})

	t.Run("no candidate jobs short-circuits without calling the matcher", func(t *testing.T) {
		t.Parallel()
		users, _, apps, matcher, _ := newFixture()
		jobs := newFakeJobRepo()
		user := users.add(&models.User{
			Role:   models.UserRoleJobseeker,
			Skills: models.SkillsToJSON([]string{"Go"}),
		})
		svc := NewMatchingService(users, jobs, apps, matcher)

		matched, total, err := svc.RecommendedJobs(context.Background(), user.ID)
		require.NoError(t, err)
		assert.Empty(t, matched)
		assert.Equal(t, int64(0), total)
		assert.Nil(t, matcher.lastReq)
	})

	t.Run("matcher failure surfaces as a server error", func(t *testing.T) {
		t.Parallel()
		users, jobs, apps, matcher, _ := newFixture()
		user := users.add(&models.User{
			Role:   models.UserRoleJobseeker,
			Skills: models.SkillsToJSON([]string{"Go"}),
		})
		jobs.add(&models.Job{Title: "Open", EmployerID: "e", IsActive: true})
		matcher.err = errors.New("connection refused")
		svc := NewMatchingService(users, jobs, apps, matcher)

		_, _, err := svc.RecommendedJobs(context.Background(), user.ID)
		require.Error(t, err)
		var appErr *apperrors.AppError
		require.True(t, apperrors.As(err, &appErr))
		assert.Equal(t, 500, appErr.HTTPCode)
		assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)
	})
}
