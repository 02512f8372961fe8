package commands

import (
	"context"
	"time"
)

// FailDeliveryCommandHandler handles the transition of a delivery from
// IN_PROGRESS to FAILED. A failed delivery keeps its record for audit but
// never re-enters the driver backlog; redelivery means a fresh order.
type FailDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewFailDeliveryCommandHandler creates a handler for failing delivery runs.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewFailDeliveryCommandHandler(uowFactory DeliveryUoWFactory) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the fail delivery command.
// Loads the delivery, applies the transition, persists it with a guard on the
// prior status and records the resulting status change in the outbox, all in
// one transaction.
func (h *FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) error {
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
	if err = shipment.Fail(time.Now().UTC()); err != nil {
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
