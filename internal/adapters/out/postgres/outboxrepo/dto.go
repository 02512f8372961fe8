// Package outboxrepo provides persistence for the transactional outbox.
// Event rows are written in the same transaction as the aggregate change they
// describe and relayed to the message transport by the dispatch job.
package outboxrepo

import (
	"time"

	"fulfillment/internal/core/ports"
)

// EventDTO represents the database structure for persisting outbox events.
type EventDTO struct {
	ID            string `gorm:"primaryKey"`
	AggregateType string
	OrderID       string
	EventType     string
	Payload       []byte
	Status        string `gorm:"index"`
	CreatedAt     time.Time
	SentAt        *time.Time
}

// TableName specifies the database table name for outbox events.
// Overrides GORM's default naming convention to use "outbox_events".
func (EventDTO) TableName() string {
	return "outbox_events"
}

// fromEvent converts an outbox event to its database representation.
// Events recorded without an explicit status start out pending.
func fromEvent(event ports.OutboxEvent) EventDTO {
	status := event.Status
	if status == "" {
		status = ports.OutboxPending
	}

	return EventDTO{
		ID:            event.ID,
		AggregateType: event.AggregateType,
		OrderID:       event.OrderID,
		EventType:     event.EventType,
		Payload:       event.Payload,
		Status:        string(status),
		CreatedAt:     event.CreatedAt,
		SentAt:        event.SentAt,
	}
}

// toEvent converts a database DTO back to an outbox event.
func toEvent(dto EventDTO) ports.OutboxEvent {
	return ports.OutboxEvent{
		ID:            dto.ID,
		AggregateType: dto.AggregateType,
		OrderID:       dto.OrderID,
		EventType:     dto.EventType,
		Payload:       dto.Payload,
		Status:        ports.OutboxStatus(dto.Status),
		CreatedAt:     dto.CreatedAt,
		SentAt:        dto.SentAt,
	}
}
