package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetPackagingRequestQueryIsNotConstructed = errors.New(
		"GetPackagingRequestQuery must be created via NewGetPackagingRequestQuery constructor",
	)
)

// GetPackagingRequestQuery retrieves the full packaging detail for one order:
// its workflow status and the product lines to box.
//
// Example:
//
//	query, err := NewGetPackagingRequestQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
//
//	handler := NewGetPackagingRequestQueryHandler(db)
//	detail, err := handler.Handle(ctx, query)
type GetPackagingRequestQuery struct {
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewGetPackagingRequestQuery creates a query for one packaging request.
// Validates that the order ID is valid.
func NewGetPackagingRequestQuery(orderID kernel.OrderID) (GetPackagingRequestQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetPackagingRequestQuery{}, err
	}

	return GetPackagingRequestQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPackagingRequestQueryIsNotConstructed if validation fails.
func (q GetPackagingRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetPackagingRequestQueryIsNotConstructed)
}

// OrderID returns the identifier of the packaged order.
func (q GetPackagingRequestQuery) OrderID() kernel.OrderID {
	return q.orderID
}

// GetPackagingRequestQueryResponse is the packaging detail of one order.
type GetPackagingRequestQueryResponse struct {
	OrderID  kernel.OrderID
	Status   packaging.Status
	Products []GetPackagingRequestQueryProduct
}

// GetPackagingRequestQueryProduct is one product line of a packaging request.
type GetPackagingRequestQueryProduct struct {
	ProductID string
	Quantity  int
}
