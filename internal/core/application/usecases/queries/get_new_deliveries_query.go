package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetNewDeliveriesQueryIsNotConstructed = errors.New(
		"GetNewDeliveriesQuery must be created via NewGetNewDeliveriesQuery constructor",
	)
)

// GetNewDeliveriesQuery retrieves a page of deliveries waiting for a driver,
// with their destination addresses. Mirrors the packaging listing's cursor
// contract.
//
// Example:
//
//	token, _ := kernel.PageTokenFromString(nextToken)
//	query, err := NewGetNewDeliveriesQuery(token, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewGetNewDeliveriesQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type GetNewDeliveriesQuery struct {
	pageToken kernel.PageToken
	pageSize  int

	guard guard.ConstructorGuard
}

// NewGetNewDeliveriesQuery creates a query for one listing page.
// The zero page token starts from the beginning; the page size must be
// between 1 and 100.
func NewGetNewDeliveriesQuery(pageToken kernel.PageToken, pageSize int) (GetNewDeliveriesQuery, error) {
	if pageSize < minPageSize || pageSize > maxPageSize {
		return GetNewDeliveriesQuery{},
			errs.NewValueIsOutOfRangeError("pageSize", pageSize, minPageSize, maxPageSize)
	}

	return GetNewDeliveriesQuery{
		pageToken: pageToken,
		pageSize:  pageSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNewDeliveriesQueryIsNotConstructed if validation fails.
func (q GetNewDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetNewDeliveriesQueryIsNotConstructed)
}

// PageToken returns the position the listing resumes after.
// The zero token means the listing starts from the beginning.
func (q GetNewDeliveriesQuery) PageToken() kernel.PageToken {
	return q.pageToken
}

// PageSize returns the maximum number of deliveries in the page.
func (q GetNewDeliveriesQuery) PageSize() int {
	return q.pageSize
}

// GetNewDeliveriesQueryResponse is one page of the NEW delivery listing.
// NextToken is the zero token when no more pages remain.
type GetNewDeliveriesQueryResponse struct {
	Deliveries []GetNewDeliveriesQueryItem
	NextToken  kernel.PageToken
}

// GetNewDeliveriesQueryItem is one waiting delivery with its destination.
type GetNewDeliveriesQueryItem struct {
	OrderID kernel.OrderID
	Address delivery.Address
}
