package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/drakon-axiom/kit-maker-sub003/internal/core/application/usecases/commands"
	"github.com/drakon-axiom/kit-maker-sub003/internal/core/ports"
)

// sweepLockTTL covers one sweep run with generous headroom; a crashed
// holder frees the lock after the TTL without operator action.
const sweepLockTTL = 10 * time.Minute

// QuoteExpirationJob runs the quote expiration sweep on a schedule. The
// sweep lock serializes runs across service instances so reminders and
// expirations fire exactly once per cycle.
type QuoteExpirationJob struct {
	handler commands.SweepExpirationsCommandHandler
	lock    ports.SweepLock
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewQuoteExpirationJob creates a job that sweeps quote expirations hourly.
func NewQuoteExpirationJob(
	handler commands.SweepExpirationsCommandHandler,
	lock ports.SweepLock,
	logger *slog.Logger,
) *QuoteExpirationJob {
	return &QuoteExpirationJob{
		handler: handler,
		lock:    lock,
		cron:    cron.New(),
		logger:  logger.With("component", "quote_expiration_job"),
	}
}

// Start schedules the sweep at the top of every hour.
func (j *QuoteExpirationJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.runSweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quote expiration job started (running hourly)")
	return nil
}

// Stop stops the quote expiration job.
func (j *QuoteExpirationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quote expiration job stopped")
}

func (j *QuoteExpirationJob) runSweep() {
	ctx := context.Background()

	acquired, err := j.lock.TryAcquire(ctx, sweepLockTTL)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to acquire sweep lock", "error", err)
		return
	}
	if !acquired {
		j.logger.InfoContext(ctx, "Sweep lock held by another instance, skipping cycle")
		return
	}
	defer func() {
		if releaseErr := j.lock.Release(ctx); releaseErr != nil {
			j.logger.WarnContext(ctx, "Failed to release sweep lock", "error", releaseErr)
		}
	}()

	cmd, err := commands.NewSweepExpirationsCommand(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build sweep command", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Quote expiration sweep failed", "error", err)
		return
	}

	if result.ExpiredCount > 0 || result.RemindedCount > 0 {
		j.logger.InfoContext(ctx, "Quote expiration sweep completed",
			"expired", result.ExpiredCount, "reminded", result.RemindedCount)
	}
}
