package jobs

import (
	"fmt"
	"log/slog"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	quoteExpirationJob *QuoteExpirationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sweepHandler commands.SweepExpirationsCommandHandler,
	sweepLock ports.SweepLock,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		quoteExpirationJob: NewQuoteExpirationJob(sweepHandler, sweepLock, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.quoteExpirationJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote expiration job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quoteExpirationJob.Stop()
}
