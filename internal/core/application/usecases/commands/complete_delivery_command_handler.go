package commands

import (
	"context"
	"time"
)

// CompleteDeliveryCommandHandler handles the transition of a delivery from
// IN_PROGRESS to COMPLETED. This is the last step of the fulfillment flow;
// the record stays readable until retention purges it.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for completing delivery runs.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete delivery command.
// Loads the delivery, applies the transition, persists it with a guard on the
// prior status and records the resulting status change in the outbox, all in
// one transaction.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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
	if err = shipment.Complete(time.Now().UTC()); err != nil {
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
