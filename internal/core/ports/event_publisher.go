package ports

import "context"

// EventPublisher defines the contract for handing domain events to the
// message transport. Implementations must not retry internally; the outbox
// dispatch command decides what happens to events the transport rejects.
type EventPublisher interface {
	// Publish sends payload on the given subject.
	Publish(ctx context.Context, subject string, payload []byte) error
}
