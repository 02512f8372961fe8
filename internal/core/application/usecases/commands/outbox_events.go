package commands

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/packaging"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
)

// statusChangedPayload is the JSON body recorded for a workflow transition.
// Dispatch publishes it verbatim on the fulfillment.<workflow>.status_changed
// subject, so field names here are part of the event contract.
type statusChangedPayload struct {
	OrderID    string    `json:"orderId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

// packagingOutboxEvents converts StatusChanged events raised by a packaging
// request into pending outbox rows, one row per transition.
func packagingOutboxEvents(events []packaging.StatusChanged) ([]ports.OutboxEvent, error) {
	rows := make([]ports.OutboxEvent, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(statusChangedPayload{
			OrderID:    event.OrderID.String(),
			From:       event.From.String(),
			To:         event.To.String(),
			OccurredAt: event.OccurredAt,
		})
		if err != nil {
			return nil, err
		}

		rows = append(rows, ports.OutboxEvent{
			ID:            uuid.NewString(),
			AggregateType: ports.AggregatePackaging,
			OrderID:       event.OrderID.String(),
			EventType:     ports.EventTypeStatusChanged,
			Payload:       payload,
			Status:        ports.OutboxPending,
			CreatedAt:     event.OccurredAt,
		})
	}

	return rows, nil
}

// deliveryOutboxEvents converts StatusChanged events raised by a delivery
// into pending outbox rows, one row per transition.
func deliveryOutboxEvents(events []delivery.StatusChanged) ([]ports.OutboxEvent, error) {
	rows := make([]ports.OutboxEvent, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(statusChangedPayload{
			OrderID:    event.OrderID.String(),
			From:       event.From.String(),
			To:         event.To.String(),
			OccurredAt: event.OccurredAt,
		})
		if err != nil {
			return nil, err
		}

		rows = append(rows, ports.OutboxEvent{
			ID:            uuid.NewString(),
			AggregateType: ports.AggregateDelivery,
			OrderID:       event.OrderID.String(),
			EventType:     ports.EventTypeStatusChanged,
			Payload:       payload,
			Status:        ports.OutboxPending,
			CreatedAt:     event.OccurredAt,
		})
	}

	return rows, nil
}
