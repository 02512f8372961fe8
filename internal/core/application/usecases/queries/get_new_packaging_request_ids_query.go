// Package queries contains read operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read the database directly,
// returning lightweight response structures for the API layer.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Page size bounds shared by the paginated listings.
const (
	minPageSize = 1
	maxPageSize = 100
)

var (
	ErrGetNewPackagingRequestIdsQueryIsNotConstructed = errors.New(
		"GetNewPackagingRequestIdsQuery must be created via NewGetNewPackagingRequestIdsQuery constructor",
	)
)

// GetNewPackagingRequestIdsQuery retrieves a page of order identifiers whose
// packaging request is waiting in NEW status. Warehouse pollers follow the
// returned token until it is absent to drain the backlog.
//
// Example:
//
//	token, _ := kernel.PageTokenFromString(nextToken)
//	query, err := NewGetNewPackagingRequestIdsQuery(token, 20)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	handler := NewGetNewPackagingRequestIdsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type GetNewPackagingRequestIdsQuery struct {
	pageToken kernel.PageToken
	pageSize  int

	guard guard.ConstructorGuard
}

// NewGetNewPackagingRequestIdsQuery creates a query for one listing page.
// The zero page token starts from the beginning; the page size must be
// between 1 and 100.
func NewGetNewPackagingRequestIdsQuery(
	pageToken kernel.PageToken,
	pageSize int,
) (GetNewPackagingRequestIdsQuery, error) {
	if pageSize < minPageSize || pageSize > maxPageSize {
		return GetNewPackagingRequestIdsQuery{},
			errs.NewValueIsOutOfRangeError("pageSize", pageSize, minPageSize, maxPageSize)
	}

	return GetNewPackagingRequestIdsQuery{
		pageToken: pageToken,
		pageSize:  pageSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetNewPackagingRequestIdsQueryIsNotConstructed if validation fails.
func (q GetNewPackagingRequestIdsQuery) Validate() error {
	return q.guard.Validate(ErrGetNewPackagingRequestIdsQueryIsNotConstructed)
}

// PageToken returns the position the listing resumes after.
// The zero token means the listing starts from the beginning.
func (q GetNewPackagingRequestIdsQuery) PageToken() kernel.PageToken {
	return q.pageToken
}

// PageSize returns the maximum number of identifiers in the page.
func (q GetNewPackagingRequestIdsQuery) PageSize() int {
	return q.pageSize
}

// GetNewPackagingRequestIdsQueryResponse is one page of the NEW packaging
// request listing. NextToken is the zero token when no more pages remain.
type GetNewPackagingRequestIdsQueryResponse struct {
	PackagingRequestIDs []kernel.OrderID
	NextToken           kernel.PageToken
}
