package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"talenthive_backend/internal/models"
	"talenthive_backend/internal/repositories"
)

// noopUserRepo satisfies the repository interface; only cleanup matters here.
type noopUserRepo struct{}

func (noopUserRepo) Create(context.Context, *models.User) error { return nil }
func (noopUserRepo) FindByID(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (noopUserRepo) FindByEmail(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (noopUserRepo) FindByVerificationToken(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (noopUserRepo) FindByResetToken(context.Context, string) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (noopUserRepo) VerifyEmail(context.Context, string) error                  { return nil }
func (noopUserRepo) SetVerificationToken(context.Context, string, string) error { return nil }
func (noopUserRepo) SetRefreshToken(context.Context, string, string) error      { return nil }
func (noopUserRepo) ClearRefreshToken(context.Context, string) error            { return nil }
func (noopUserRepo) SetResetToken(context.Context, string, string, time.Time) error {
	return nil
}
func (noopUserRepo) ResetPassword(context.Context, string, string) error { return nil }
func (noopUserRepo) UpdateJobseekerProfile(context.Context, string, map[string]interface{}) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (noopUserRepo) UpdateEmployerProfile(context.Context, string, map[string]interface{}) (*models.User, error) {
	return nil, repositories.ErrUserNotFound
}
func (noopUserRepo) CleanExpiredResetTokens(context.Context) (int64, error) { return 0, nil }

type countingUserRepo struct {
	noopUserRepo
	mu      sync.Mutex
	cleaned int
}

func (r *countingUserRepo) CleanExpiredResetTokens(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleaned++
	return 1, nil
}

func (r *countingUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cleaned
}

func TestTokenCleanupWorker(t *testing.T) {
	t.Parallel()

	repo := &countingUserRepo{}
	worker := NewTokenCleanupWorker(repo, 10*time.Millisecond)
	worker.Start()

	assert.Eventually(t, func() bool { return repo.count() >= 2 }, time.Second, 5*time.Millisecond)

	worker.Stop()
	after := repo.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, repo.count(), "no sweeps after Stop")
}

func TestWorkerDefaultsInterval(t *testing.T) {
	t.Parallel()
	worker := NewTokenCleanupWorker(&countingUserRepo{}, 0)
	assert.Equal(t, time.Hour, worker.interval)
}
