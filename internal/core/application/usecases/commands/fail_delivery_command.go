package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrFailDeliveryCommandIsNotConstructed = errors.New(
		"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
	)
)

// FailDeliveryCommand represents a driver reporting a package as
// undeliverable. Moves the delivery from IN_PROGRESS to FAILED, a final state.
//
// Example:
//
//	cmd, err := NewFailDeliveryCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//
//	handler := NewFailDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to fail delivery: %w", err)
//	}
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command to mark a delivery as failed.
// Validates that the order ID is valid.
func NewFailDeliveryCommand(orderID kernel.OrderID) (FailDeliveryCommand, error) {
	command := FailDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return FailDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFailDeliveryCommandIsNotConstructed if validation fails.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose delivery failed.
func (c FailDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *FailDeliveryCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
