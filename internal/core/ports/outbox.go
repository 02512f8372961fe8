package ports

import (
	"context"
	"fmt"
	"time"
)

// Aggregate type markers recorded on outbox events. Together with the event
// type they form the subject an event is dispatched on.
const (
	AggregatePackaging = "packaging"
	AggregateDelivery  = "delivery"
)

// EventTypeStatusChanged is the event type recorded for lifecycle transitions.
const EventTypeStatusChanged = "status_changed"

// OutboxStatus is the dispatch state of an outbox event.
type OutboxStatus string

const (
	// OutboxPending marks an event recorded but not yet dispatched.
	OutboxPending OutboxStatus = "PENDING"

	// OutboxSent marks an event successfully handed to the transport.
	OutboxSent OutboxStatus = "SENT"

	// OutboxFailed marks an event the transport rejected.
	OutboxFailed OutboxStatus = "FAILED"
)

// OutboxEvent is one row of the transactional outbox. Commands record events
// in the same transaction as the state change they describe; the dispatch job
// relays them to the event transport afterwards, so a transition and its
// event cannot be lost independently of each other.
type OutboxEvent struct {
	// ID uniquely identifies the event row.
	ID string

	// AggregateType names the workflow the event belongs to
	// (AggregatePackaging or AggregateDelivery).
	AggregateType string

	// OrderID identifies the order whose record transitioned.
	OrderID string

	// EventType names the kind of event (EventTypeStatusChanged).
	EventType string

	// Payload is the JSON-encoded event body.
	Payload []byte

	// Status is the dispatch state of the row.
	Status OutboxStatus

	// CreatedAt is when the event was recorded.
	CreatedAt time.Time

	// SentAt is when the event was handed to the transport; nil until then.
	SentAt *time.Time
}

// Subject returns the transport subject the event is dispatched on, in the
// form fulfillment.<aggregate type>.<event type>.
func (e OutboxEvent) Subject() string {
	return fmt.Sprintf("fulfillment.%s.%s", e.AggregateType, e.EventType)
}

// OutboxRepository defines the persistence contract for the outbox table.
type OutboxRepository interface {
	// Add records events as pending rows. Called inside the same transaction
	// as the state change the events describe.
	Add(ctx context.Context, events ...OutboxEvent) error

	// ListPending returns up to limit pending events in creation order.
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)

	// MarkSent flips an event to sent and stamps the dispatch time.
	MarkSent(ctx context.Context, id string, sentAt time.Time) error

	// MarkFailed flips an event to failed after the transport rejected it.
	MarkFailed(ctx context.Context, id string) error
}
