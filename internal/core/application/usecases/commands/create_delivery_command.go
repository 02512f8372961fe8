package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a request to register a new order in the
// delivery workflow. Carries the order identifier and the destination address.
//
// Example:
//
//	addr, _ := delivery.NewAddress("John Doe", "123 Birch Street", "Bastogne", "Belgium")
//	cmd, err := NewCreateDeliveryCommand(orderID, addr)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create delivery: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	address delivery.Address

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register an order for delivery.
// Validates that the order ID is valid and the address is properly constructed.
// Returns an error if any validation fails.
func NewCreateDeliveryCommand(orderID kernel.OrderID, address delivery.Address) (CreateDeliveryCommand, error) {
	command := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAddress(address),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to ship.
func (c CreateDeliveryCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Address returns the destination address.
func (c CreateDeliveryCommand) Address() delivery.Address {
	return c.address
}

func (c *CreateDeliveryCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setAddress(address delivery.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
