package commands

import (
	"context"
	"time"
)

// StartDeliveryCommandHandler handles the transition of a delivery from NEW
// to IN_PROGRESS. The status update is guarded by the expected source status,
// so two drivers racing for the same package cannot both win; the loser
// receives a version error and rolls back.
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for starting delivery runs.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewStartDeliveryCommandHandler(uowFactory DeliveryUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start delivery command.
// Loads the delivery, applies the transition, persists it with a guard on the
// prior status and records the resulting status change in the outbox, all in
// one transaction.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()

	shipment, err := deliveryRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	from := shipment.Status()
	if err = shipment.Start(time.Now().UTC()); err != nil {
		return err
	}

	if err = deliveryRepo.UpdateStatus(ctx, shipment, from); err != nil {
		return err
	}

	events, err := deliveryOutboxEvents(shipment.Events())
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
