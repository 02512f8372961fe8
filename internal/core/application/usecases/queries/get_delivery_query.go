package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
)

// GetDeliveryQuery retrieves the destination address of one delivery.
//
// Example:
//
//	query, err := NewGetDeliveryQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//
//	handler := NewGetDeliveryQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
type GetDeliveryQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for one delivery.
// Validates that the order ID is valid.
func NewGetDeliveryQuery(orderID kernel.OrderID) (GetDeliveryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryQueryIsNotConstructed if validation fails.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// OrderID returns the identifier of the delivered order.
func (q GetDeliveryQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetDeliveryQueryResponse is the address detail of one delivery.
type GetDeliveryQueryResponse struct {
	OrderID kernel.OrderID
	Address delivery.Address
}
