package commands

import (
	"context"
	"time"
)

// CompletePackagingCommandHandler handles the transition of a packaging
// request from IN_PROGRESS to COMPLETED. Completed requests leave the
// warehouse backlog; the delivery workflow takes over from there.
type CompletePackagingCommandHandler struct {
	uowFactory PackagingUoWFactory
}

// NewCompletePackagingCommandHandler creates a handler for completing packaging work.
// Requires a PackagingUoWFactory for transactional persistence.
func NewCompletePackagingCommandHandler(uowFactory PackagingUoWFactory) CompletePackagingCommandHandler {
	return CompletePackagingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete packaging command.
// Loads the request, applies the transition, persists it with a guard on the
// prior status and records the resulting status change in the outbox, all in
// one transaction.
func (h *CompletePackagingCommandHandler) Handle(ctx context.Context, cmd CompletePackagingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packagingRepo := uow.PackagingRepository()

	request, err := packagingRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := request.Status()
	if err = request.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = packagingRepo.UpdateStatus(ctx, request, from); err != nil {
		return err
	}

	events, err := packagingOutboxEvents(request.Events())
	if err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, events...); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
