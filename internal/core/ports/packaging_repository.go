// Package ports defines the contracts between the application core and
// infrastructure adapters. Repository interfaces cover aggregate persistence,
// the outbox table and the event transport, enabling dependency inversion
// and testability.
package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packaging"
)

// PackagingRepository defines the persistence contract for packaging request
// aggregates. Listing pending requests for the API is a read-side concern and
// goes through the query handlers instead.
type PackagingRepository interface {
	// Add persists a new packaging request to storage.
	// The request must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *packaging.Request) error

	// Get retrieves a packaging request by the order it packages.
	// Returns the complete request with its product lines and lifecycle state.
	// Returns an ObjectNotFoundError when no request exists for the order.
	Get(ctx context.Context, orderID kernel.OrderID) (*packaging.Request, error)

	// UpdateStatus persists the aggregate's lifecycle fields (status,
	// modified date, arrival marker) guarded by the expected source status.
	// The update applies only if the stored status still equals from; a
	// concurrent transition that moved the request first makes the guard miss
	// and a VersionIsInvalidError is returned, giving each transition
	// at-most-once semantics.
	UpdateStatus(ctx context.Context, aggregate *packaging.Request, from packaging.Status) error

	// DeleteCompletedBefore removes requests that reached Completed status and
	// were last modified before the cutoff, product lines included. Returns
	// the number of rows removed. Used by the retention sweep; production
	// records otherwise persist through their terminal state.
	DeleteCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
