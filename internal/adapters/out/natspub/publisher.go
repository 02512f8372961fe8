// Package natspub hands outbox events to the NATS message transport.
package natspub

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Publisher implements the event publisher port on a core NATS connection.
// It never retries; the outbox dispatch command owns the fate of rejected
// events.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher creates a publisher on an established NATS connection.
func NewPublisher(conn *nats.Conn) *Publisher {
	return &Publisher{conn: conn}
}

// Publish sends payload on the given subject and waits for the broker round
// trip before reporting success. A publish that only reached the client-side
// buffer does not count as sent.
func (p *Publisher) Publish(ctx context.Context, subject string, payload []byte) error {
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish on %s: %w", subject, err)
	}

	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("confirm publish on %s: %w", subject, err)
	}

	return nil
}
