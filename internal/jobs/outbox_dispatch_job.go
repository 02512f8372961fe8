package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxDispatchJob manages the scheduled relay of outbox events.
// Runs every second to publish pending status-change events to the transport.
type OutboxDispatchJob struct {
	handler   commands.DispatchOutboxCommandHandler
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxDispatchJob creates a new job for relaying outbox events.
// Uses DispatchOutboxCommandHandler to publish pending events every second,
// at most batchSize per pass.
func NewOutboxDispatchJob(
	handler commands.DispatchOutboxCommandHandler,
	batchSize int,
	logger *slog.Logger,
) *OutboxDispatchJob {
	return &OutboxDispatchJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_dispatch_job"),
	}
}

// Start begins the outbox dispatch job to run every second.
// Returns an error if the batch size cannot form a valid command.
func (j *OutboxDispatchJob) Start() error {
	cmd, err := commands.NewDispatchOutboxCommand(j.batchSize)
	if err != nil {
		return err
	}

	_, err = j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch job failed", "error", err)
			return
		}

		// An idle pass is the common case; only report passes that moved events.
		if result.Failed > 0 {
			j.logger.WarnContext(ctx, "Outbox events rejected by transport",
				"sent", result.Sent, "failed", result.Failed)
		} else if result.Sent > 0 {
			j.logger.InfoContext(ctx, "Outbox events published", "sent", result.Sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job started (running every second)")
	return nil
}

// Stop stops the outbox dispatch job.
func (j *OutboxDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job stopped")
}
