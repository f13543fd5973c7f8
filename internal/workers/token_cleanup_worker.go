package workers

import (
	"context"
	"time"

	"talenthive_backend/internal/logger"
	"talenthive_backend/internal/repositories"
)

// TokenCleanupWorker periodically clears expired password-reset tokens so
// stale tokens cannot pile up on user rows.
type TokenCleanupWorker struct {
	users    repositories.UserRepository
	interval time.Duration
	stop     chan struct{}
	done     chan struct{}
}

func NewTokenCleanupWorker(users repositories.UserRepository, interval time.Duration) *TokenCleanupWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &TokenCleanupWorker{
		users:    users,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (w *TokenCleanupWorker) Start() {
	go w.run()
}

func (w *TokenCleanupWorker) run() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.cleanup()
		case <-w.stop:
			return
		}
	}
}

func (w *TokenCleanupWorker) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cleaned, err := w.users.CleanExpiredResetTokens(ctx)
	if err != nil {
		logger.Error("reset token cleanup failed", "error", err)
		return
	}
	if cleaned > 0 {
		logger.Info("cleared expired reset tokens", "count", cleaned)
	}
}

// Stop signals the worker and waits for the current sweep to finish.
func (w *TokenCleanupWorker) Stop() {
	close(w.stop)
	<-w.done
}
