package commands

import (
	"context"
	"time"
)

// StartPackagingCommandHandler handles the transition of a packaging request
// from NEW to IN_PROGRESS. The status update is guarded by the expected source
// status, so two packers racing for the same order cannot both win; the loser
// receives a version error and rolls back.
//
// Example:
//
//	handler := NewStartPackagingCommandHandler(uowFactory)
//	cmd, _ := NewStartPackagingCommand(orderID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("start packaging failed: %w", err)
//	}
type StartPackagingCommandHandler struct {
	uowFactory PackagingUoWFactory
}

// NewStartPackagingCommandHandler creates a handler for starting packaging work.
// Requires a PackagingUoWFactory for transactional persistence.
func NewStartPackagingCommandHandler(uowFactory PackagingUoWFactory) StartPackagingCommandHandler {
	return StartPackagingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start packaging command.
// Loads the request, applies the transition, persists it with a guard on the
// prior status and records the resulting status change in the outbox, all in
// one transaction.
func (h *StartPackagingCommandHandler) Handle(ctx context.Context, cmd StartPackagingCommand) error {
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
	if err = request.Start(time.Now().UTC()); err != nil {
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
