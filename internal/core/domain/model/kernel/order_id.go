package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID, OrderIDFromString, or OrderIDFromBytes")

// OrderID is a value object that identifies an order across the fulfillment flow.
// Every packaging request and delivery is keyed by the OrderID of the order that
// produced it, so the same identifier travels through the warehouse tables, the
// GraphQL API, and the published events.
//
// OrderID wraps the github.com/google/uuid implementation to provide domain-specific
// behavior and ensure immutability. The zero value is invalid and must be constructed
// using one of the provided factory functions: NewOrderID, OrderIDFromString, or
// OrderIDFromBytes.
//
// OrderID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Generate an identifier for a brand new order
//	id := kernel.NewOrderID()
//
//	// Parse an identifier received over the API
//	id, err := kernel.OrderIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type OrderID struct {
	id uuid.UUID
}

// NewOrderID generates a new random OrderID (UUID version 4).
// This is the primary way to mint identifiers for new orders entering the
// fulfillment flow. The generated identifier is guaranteed to be valid and
// unique with extremely high probability.
func NewOrderID() OrderID {
	return OrderID{
		id: uuid.New(),
	}
}

// OrderIDFromString parses an OrderID from its string representation.
// It accepts standard UUID formats including:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//
// Returns an error if the string is not a valid UUID format.
// This function is typically used when parsing identifiers arriving through
// the GraphQL API or when reconstructing records from persistence.
//
// Example:
//
//	id, err := kernel.OrderIDFromString(input.OrderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func OrderIDFromString(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, fmt.Errorf("invalid OrderID format: %w", err)
	}
	return OrderID{id: id}, nil
}

// OrderIDFromBytes creates an OrderID from a byte slice.
// The byte slice must be exactly 16 bytes long.
// Returns an error if the byte slice is not valid for UUID construction
// or if it represents the nil UUID.
//
// This function is used when order identifiers are stored as native uuid
// columns in the database.
func OrderIDFromBytes(b []byte) (OrderID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return OrderID{}, fmt.Errorf("invalid OrderID format: %w", err)
	}
	newID := OrderID{id: id}
	if err = newID.Validate(); err != nil {
		return OrderID{}, err
	}

	return newID, nil
}

// String returns the standard string representation of the OrderID.
// The format is "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" where x is a hexadecimal digit.
// For a zero value OrderID, this returns "00000000-0000-0000-0000-000000000000".
//
// This is the representation used on the GraphQL wire and in published events.
func (o OrderID) String() string {
	return o.id.String()
}

// Bytes returns the underlying UUID value.
// Note: This returns the internal uuid.UUID type, not a byte slice.
// For a byte slice representation, use id.Bytes()[:].
//
// This method provides access to the underlying UUID for persistence mapping
// where uuid columns are used. Direct access should otherwise be minimized
// to maintain encapsulation.
func (o OrderID) Bytes() uuid.UUID {
	return o.id
}

// IsEqual compares two OrderIDs for equality.
// Returns true if both identify the same order, false otherwise.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate checks if the OrderID is properly constructed.
// Returns ErrOrderIDIsNotConstructed if the OrderID is a zero value (nil UUID).
// A valid OrderID is any identifier that was created through one of the
// constructor functions.
//
// Example:
//
//	func NewRequest(orderID kernel.OrderID, ...) (*Request, error) {
//	    if err := orderID.Validate(); err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
func (o OrderID) Validate() error {
	if o.id == uuid.Nil {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
