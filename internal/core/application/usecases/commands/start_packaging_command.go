package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrStartPackagingCommandIsNotConstructed = errors.New(
		"StartPackagingCommand must be created via NewStartPackagingCommand constructor",
	)
)

// StartPackagingCommand represents a packer picking up an order and beginning
// to box it. Moves the packaging request from NEW to IN_PROGRESS.
//
// Example:
//
//	cmd, err := NewStartPackagingCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//
//	handler := NewStartPackagingCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to start packaging: %w", err)
//	}
type StartPackagingCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewStartPackagingCommand creates a command to start packaging an order.
// Validates that the order ID is valid.
func NewStartPackagingCommand(orderID kernel.OrderID) (StartPackagingCommand, error) {
	command := StartPackagingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return StartPackagingCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartPackagingCommandIsNotConstructed if validation fails.
func (c StartPackagingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackagingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose packaging starts.
func (c StartPackagingCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *StartPackagingCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
