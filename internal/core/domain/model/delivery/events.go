package delivery

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusChanged is the domain event raised by Delivery transitions.
// Every successful Start, Fail or Complete records one StatusChanged so
// downstream consumers can follow the shipping workflow.
type StatusChanged struct {
	// OrderID identifies the order whose delivery transitioned.
	OrderID kernel.OrderID

	// From is the status the delivery left.
	From Status

	// To is the status the delivery entered.
	To Status

	// OccurredAt is when the transition was applied.
	OccurredAt time.Time
}
