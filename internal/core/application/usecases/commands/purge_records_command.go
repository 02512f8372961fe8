package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPurgeRecordsCommandIsNotConstructed = errors.New(
		"PurgeRecordsCommand must be created via NewPurgeRecordsCommand constructor",
	)
)

// PurgeRecordsCommand triggers the retention sweep: packaging requests that
// completed and deliveries that reached a terminal state before the cutoff
// are removed. Records younger than the cutoff stay readable.
//
// Example:
//
//	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
//	cmd, _ := NewPurgeRecordsCommand(cutoff)
//	handler := NewPurgeRecordsCommandHandler(uowFactory)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("retention sweep failed: %v", err)
//	}
type PurgeRecordsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeRecordsCommand creates a command for one retention sweep.
// The cutoff bounds the sweep: only records last modified before it are
// candidates. A zero cutoff is rejected.
func NewPurgeRecordsCommand(cutoff time.Time) (PurgeRecordsCommand, error) {
	command := PurgeRecordsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return PurgeRecordsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeRecordsCommandIsNotConstructed if validation fails.
func (c PurgeRecordsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeRecordsCommandIsNotConstructed)
}

// Cutoff returns the instant before which terminal records are purged.
func (c PurgeRecordsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeRecordsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return errs.NewValueIsRequiredError("cutoff")
	}

	c.cutoff = cutoff
	return nil
}
