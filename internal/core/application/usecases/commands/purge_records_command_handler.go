package commands

import (
	"context"
)

// PurgeRecordsResult reports how many rows the retention sweep removed.
// The packaging count includes line-item rows, not just request records.
type PurgeRecordsResult struct {
	PackagingRowsRemoved int64
	DeliveryRowsRemoved  int64
}

// PurgeRecordsCommandHandler runs the retention sweep over both workflow
// tables. Packaging requests are purged once COMPLETED, deliveries once
// COMPLETED or FAILED; in both cases only when last modified before the
// cutoff. Both sweeps run in one transaction.
type PurgeRecordsCommandHandler struct {
	uowFactory UoWFactory
}

// NewPurgeRecordsCommandHandler creates a handler for retention sweeps.
// Requires a UoWFactory because the sweep spans both workflow repositories.
func NewPurgeRecordsCommandHandler(uowFactory UoWFactory) PurgeRecordsCommandHandler {
	return PurgeRecordsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retention sweep command.
// Deletes terminal packaging and delivery records older than the cutoff and
// reports the removed row counts.
func (h *PurgeRecordsCommandHandler) Handle(
	ctx context.Context,
	cmd PurgeRecordsCommand,
) (PurgeRecordsResult, error) {
	if err := cmd.Validate(); err != nil {
		return PurgeRecordsResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PurgeRecordsResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packagingRemoved, err := uow.PackagingRepository().DeleteCompletedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return PurgeRecordsResult{}, err
	}

	deliveryRemoved, err := uow.DeliveryRepository().DeleteTerminalBefore(ctx, cmd.Cutoff())
	if err != nil {
		return PurgeRecordsResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PurgeRecordsResult{}, err
	}

	return PurgeRecordsResult{
		PackagingRowsRemoved: packagingRemoved,
		DeliveryRowsRemoved:  deliveryRemoved,
	}, nil
}
