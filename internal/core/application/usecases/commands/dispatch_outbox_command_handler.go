package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// DispatchOutboxResult reports the outcome of one dispatch pass.
type DispatchOutboxResult struct {
	// Sent is the number of events handed to the transport.
	Sent int

	// Failed is the number of events the transport rejected.
	Failed int
}

// DispatchOutboxCommandHandler relays pending outbox events to the event
// transport. Each event is published on its subject; successes are marked
// SENT, transport rejections are marked FAILED so a broken event cannot block
// the ones behind it.
//
// Example:
//
//	handler := NewDispatchOutboxCommandHandler(uowFactory, publisher)
//	cmd, _ := NewDispatchOutboxCommand(100)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("outbox dispatch failed: %w", err)
//	}
//	log.Printf("dispatched %d events, %d failed", result.Sent, result.Failed)
type DispatchOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

// NewDispatchOutboxCommandHandler creates a handler for outbox dispatch passes.
// Requires an OutboxUoWFactory for state updates and an EventPublisher for
// the actual transport.
func NewDispatchOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) DispatchOutboxCommandHandler {
	return DispatchOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes one dispatch pass.
// Reads up to the batch size of pending events in creation order, publishes
// each on its subject and updates its dispatch state. The whole pass commits
// as one transaction; a publish rejection marks that event FAILED but does
// not abort the pass.
func (h *DispatchOutboxCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchOutboxCommand,
) (DispatchOutboxResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchOutboxResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchOutboxResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	outboxRepo := uow.OutboxRepository()

	events, err := outboxRepo.ListPending(ctx, cmd.BatchSize())
	if err != nil {
		return DispatchOutboxResult{}, err
	}

	var result DispatchOutboxResult
	for _, event := range events {
		if publishErr := h.publisher.Publish(ctx, event.Subject(), event.Payload); publishErr != nil {
			if err = outboxRepo.MarkFailed(ctx, event.ID); err != nil {
				return DispatchOutboxResult{}, err
			}
			result.Failed++
			continue
		}

		if err = outboxRepo.MarkSent(ctx, event.ID, time.Now().UTC()); err != nil {
			return DispatchOutboxResult{}, err
		}
		result.Sent++
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchOutboxResult{}, err
	}

	return result, nil
}
