package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/pkg/errs"
)

// CreateDeliveryCommandHandler handles the business logic for registering an
// order in the delivery workflow. Creates the delivery in NEW status with its
// pending marker set, making it visible to driver pollers.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	cmd, _ := NewCreateDeliveryCommand(orderID, addr)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("delivery creation failed: %w", err)
//	}
//	// The delivery now shows up in the new delivery listing
type CreateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation operations.
// Requires a DeliveryUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery creation command.
// Creates the delivery in NEW status stamped with the current time. An order
// that is already registered returns ObjectAlreadyExistsError untouched.
// Uses a transaction to ensure the delivery is properly persisted or rolled back on error.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	_, err := deliveryRepo.Get(ctx, cmd.OrderID())
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError("delivery", cmd.OrderID())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	shipment, err := delivery.NewDelivery(cmd.OrderID(), cmd.Address(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, shipment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
