package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// retentionSchedule runs the sweep at the top of every hour.
const retentionSchedule = "0 0 * * * *"

// RetentionJob manages the scheduled removal of finished records.
// Runs hourly to purge packaging requests and deliveries that reached a
// terminal state longer ago than the retention window.
type RetentionJob struct {
	handler   commands.PurgeRecordsCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewRetentionJob creates a new job for sweeping finished records.
// Uses PurgeRecordsCommandHandler with a cutoff derived from the retention
// window on every run.
func NewRetentionJob(
	handler commands.PurgeRecordsCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *RetentionJob {
	return &RetentionJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "retention_job"),
	}
}

// Start begins the retention job to run every hour.
func (j *RetentionJob) Start() error {
	_, err := j.cron.AddFunc(retentionSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeRecordsCommand(time.Now().UTC().Add(-j.retention))
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention sweep skipped", "error", err)
			return
		}

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Retention sweep failed", "error", err)
			return
		}

		if result.PackagingRowsRemoved > 0 || result.DeliveryRowsRemoved > 0 {
			j.logger.InfoContext(ctx, "Retention sweep removed finished records",
				"packaging_rows", result.PackagingRowsRemoved,
				"delivery_rows", result.DeliveryRowsRemoved)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Retention job started (running every hour)")
	return nil
}

// Stop stops the retention job.
func (j *RetentionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Retention job stopped")
}
