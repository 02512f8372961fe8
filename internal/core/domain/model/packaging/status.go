package packaging

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a packaging request.
// It implements a state machine with defined transitions to ensure
// requests follow the correct warehouse workflow.
//
// State transitions:
//
//	New ──> InProgress ──> Completed
//
// Completed is a final state with no further transitions.
//
// Status is a value object that validates state transitions and provides
// the wire representation used by the API, published events and storage.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when a packaging request enters the warehouse.
	// Requests in this status are waiting for a packer to pick them up.
	New

	// InProgress indicates a packer has started boxing the order.
	InProgress

	// Completed indicates the order has been fully packaged.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
	}
}

// StatusFromString parses a stored or wire status value.
//
// Accepted values are exactly the wire strings: "NEW", "IN_PROGRESS",
// "COMPLETED". Anything else, including "UNKNOWN", is rejected.
//
// Returns:
//   - the parsed Status and nil on success
//   - (Unknown, error) when the value is not a valid status
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid packaging status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, InProgress, Completed.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns:
//   - "NEW", "IN_PROGRESS", or "COMPLETED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones. The wire form
// is what the API returns and what the database stores.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - New -> InProgress (packer picks up the request)
//
// Invalid transitions:
//   - InProgress -> InProgress (already started)
//   - Completed -> InProgress (cannot restart finished work)
//   - Unknown -> InProgress (invalid initial state)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Request.Start() to enforce state transitions.
func (s Status) Start() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start packaging", s.String()),
		)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (order fully boxed)
//
// Invalid transitions:
//   - New -> Completed (must be started first)
//   - Completed -> Completed (already completed)
//   - Unknown -> Completed (invalid initial state)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Request.Complete() to enforce state transitions.
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete packaging", s.String()),
		)
	}

	return Completed, nil
}
