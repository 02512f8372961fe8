package packaging

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// StatusChanged is the domain event raised by Request transitions.
// Every successful Start or Complete records one StatusChanged so downstream
// consumers can follow the warehouse workflow.
type StatusChanged struct {
	// OrderID identifies the order whose packaging request transitioned.
	OrderID kernel.OrderID

	// From is the status the request left.
	From Status

	// To is the status the request entered.
	To Status

	// OccurredAt is when the transition was applied.
	OccurredAt time.Time
}
