// Package delivery provides domain entities and business logic for the
// shipping workflow. It implements the Delivery aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Delivery: The aggregate root that manages a shipment's identity,
//     destination, and lifecycle
//   - Address: An immutable value object describing the destination
//   - Status: A state machine that enforces valid delivery status transitions
//   - StatusChanged: The domain event raised by transitions
//
// Key business rules:
//   - Deliveries must reference a valid order and a complete address
//   - Status follows a defined workflow: New -> InProgress -> Completed or Failed
//   - The IsNew marker holds exactly while the status is New
//   - The address never changes once the delivery is created
//   - Completed and Failed deliveries admit no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
