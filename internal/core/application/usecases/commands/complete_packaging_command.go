package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCompletePackagingCommandIsNotConstructed = errors.New(
		"CompletePackagingCommand must be created via NewCompletePackagingCommand constructor",
	)
)

// CompletePackagingCommand represents a packer finishing an order. Moves the
// packaging request from IN_PROGRESS to COMPLETED, its final state.
//
// Example:
//
//	cmd, err := NewCompletePackagingCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//
//	handler := NewCompletePackagingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to complete packaging: %w", err)
//	}
type CompletePackagingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewCompletePackagingCommand creates a command to complete packaging an order.
// Validates that the order ID is valid.
func NewCompletePackagingCommand(orderID kernel.OrderID) (CompletePackagingCommand, error) {
	command := CompletePackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return CompletePackagingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompletePackagingCommandIsNotConstructed if validation fails.
func (c CompletePackagingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackagingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose packaging completes.
func (c CompletePackagingCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *CompletePackagingCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
