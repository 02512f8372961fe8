// Package packaging provides domain entities and business logic for the
// warehouse packaging workflow. It implements the Request aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Request: The aggregate root that manages a packaging request's identity,
//     order lines, and lifecycle
//   - Product: A value object describing one order line to box
//   - Status: A state machine that enforces valid packaging status transitions
//   - StatusChanged: The domain event raised by transitions
//
// Key business rules:
//   - Requests must reference a valid order and distinct, valid product lines
//   - Status follows a defined workflow: New -> InProgress -> Completed
//   - The arrival marker NewDate is present exactly while the status is New
//   - Completed requests admit no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package packaging
