package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreatePackagingRequestCommandIsNotConstructed = errors.New(
		"CreatePackagingRequestCommand must be created via NewCreatePackagingRequestCommand constructor",
	)
)

// CreatePackagingRequestCommand represents a request to register a new order
// in the warehouse packaging workflow. Carries the order identifier and the
// order lines to box.
//
// Example:
//
//	line, _ := packaging.NewProduct("prod-5402", 2)
//	cmd, err := NewCreatePackagingRequestCommand(orderID, []packaging.Product{line})
//	if err != nil {
//	    return fmt.Errorf("invalid packaging data: %w", err)
//	}
//
//	handler := NewCreatePackagingRequestCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create packaging request: %w", err)
//	}
type CreatePackagingRequestCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	products []packaging.Product

	guard guard.ConstructorGuard
}

// NewCreatePackagingRequestCommand creates a command to register an order for packaging.
// Validates that the order ID is valid and every order line is properly constructed.
// An empty product list is allowed; line rows may arrive separately.
// Returns an error if any validation fails.
func NewCreatePackagingRequestCommand(
	orderID kernel.OrderID,
	products []packaging.Product,
) (CreatePackagingRequestCommand, error) {
	command := CreatePackagingRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setProducts(products),
	); err != nil {
		return CreatePackagingRequestCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreatePackagingRequestCommandIsNotConstructed if validation fails.
func (c CreatePackagingRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackagingRequestCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to package.
func (c CreatePackagingRequestCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Products returns the order lines to box.
func (c CreatePackagingRequestCommand) Products() []packaging.Product {
	return c.products
}

func (c *CreatePackagingRequestCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePackagingRequestCommand) setProducts(products []packaging.Product) error {
	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
	}

	c.products = products
	return nil
}
