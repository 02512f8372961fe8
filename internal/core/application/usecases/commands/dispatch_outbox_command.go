package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	minDispatchBatchSize = 1
	maxDispatchBatchSize = 1000
)

var (
	ErrDispatchOutboxCommandIsNotConstructed = errors.New(
		"DispatchOutboxCommand must be created via NewDispatchOutboxCommand constructor",
	)
)

// DispatchOutboxCommand triggers one relay pass over the transactional
// outbox: pending events are published to the event transport and flipped to
// SENT or FAILED. Runs periodically from the dispatch job.
//
// Example:
//
//	cmd, _ := NewDispatchOutboxCommand(100)
//	handler := NewDispatchOutboxCommandHandler(uowFactory, publisher)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("dispatch pass failed: %v", err)
//	}
type DispatchOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

// NewDispatchOutboxCommand creates a command for one outbox dispatch pass.
// The batch size bounds how many pending events a single pass relays.
func NewDispatchOutboxCommand(batchSize int) (DispatchOutboxCommand, error) {
	command := DispatchOutboxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setBatchSize(batchSize); err != nil {
		return DispatchOutboxCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchOutboxCommandIsNotConstructed if validation fails.
func (c DispatchOutboxCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOutboxCommandIsNotConstructed)
}

// BatchSize returns the maximum number of events relayed in this pass.
func (c DispatchOutboxCommand) BatchSize() int {
	return c.batchSize
}

func (c *DispatchOutboxCommand) setBatchSize(batchSize int) error {
	if batchSize < minDispatchBatchSize || batchSize > maxDispatchBatchSize {
		return errs.NewValueIsOutOfRangeError("batchSize", batchSize, minDispatchBatchSize, maxDispatchBatchSize)
	}

	c.batchSize = batchSize
	return nil
}
