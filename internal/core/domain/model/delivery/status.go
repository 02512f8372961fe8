package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a state machine with defined transitions to ensure
// deliveries follow the correct shipping workflow.
//
// State transitions:
//
//	New ──> InProgress ──┬──> Completed
//	                     └──> Failed
//
// Completed and Failed are final states with no further transitions.
//
// Status is a value object that validates state transitions and provides
// the wire representation used by the API, published events and storage.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when a delivery is created for a packaged order.
	// Deliveries in this status are waiting for a driver to pick them up.
	New

	// InProgress indicates a driver has picked up the package and is on the way.
	InProgress

	// Failed indicates the delivery could not be made.
	// This is a final state with no further transitions allowed.
	Failed

	// Completed indicates the package reached its destination.
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
		Failed:     "FAILED",
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
		Failed:     "FAILED",
		Completed:  "COMPLETED",
	}
}

// StatusFromString parses a stored or wire status value.
//
// Accepted values are exactly the wire strings: "NEW", "IN_PROGRESS",
// "FAILED", "COMPLETED". Anything else, including "UNKNOWN", is rejected.
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
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, InProgress, Failed, Completed.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
//
// Returns:
//   - "NEW", "IN_PROGRESS", "FAILED", or "COMPLETED" for valid statuses
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

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Failed || s == Completed
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - New -> InProgress (driver picks up the package)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Delivery.Start() to enforce state transitions.
func (s Status) Start() (Status, error) {
	if s != New {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start delivery", s.String()),
		)
	}

	return InProgress, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - InProgress -> Failed (delivery could not be made)
//
// Returns:
//   - (Failed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Delivery.Fail() to enforce state transitions.
// Failed is a final state with no further transitions possible.
func (s Status) Fail() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail delivery", s.String()),
		)
	}

	return Failed, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (package delivered)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
//
// This method is used by Delivery.Complete() to enforce state transitions.
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete delivery", s.String()),
		)
	}

	return Completed, nil
}
