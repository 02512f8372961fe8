package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Listing pending deliveries for the API is a read-side concern and goes
// through the query handlers instead.
type DeliveryRepository interface {
	// Add persists a new delivery to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery by the order it ships.
	// Returns the complete delivery with its address and lifecycle state.
	// Returns an ObjectNotFoundError when no delivery exists for the order.
	Get(ctx context.Context, orderID kernel.OrderID) (*delivery.Delivery, error)

	// UpdateStatus persists the aggregate's lifecycle fields (status, modified
	// date, pending marker) guarded by the expected source status. The update
	// applies only if the stored status still equals from; a concurrent
	// transition that moved the delivery first makes the guard miss and a
	// VersionIsInvalidError is returned, giving each transition at-most-once
	// semantics.
	UpdateStatus(ctx context.Context, aggregate *delivery.Delivery, from delivery.Status) error

	// DeleteTerminalBefore removes deliveries that reached a terminal status
	// (Completed or Failed) and were last modified before the cutoff. Returns
	// the number of rows removed. Used by the retention sweep; production
	// records otherwise persist through their terminal state.
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
