package packaging

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not created
	// through the NewRequest or RestoreRequest factory methods. This ensures all
	// packaging requests are properly validated.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")
)

// Request represents a packaging request in the warehouse. It is the aggregate
// root that manages the packaging lifecycle of one order from arrival through
// boxing to completion.
//
// Request follows these invariants:
//   - Must have a valid order identifier
//   - Product lines must be individually valid and reference distinct products
//   - Status transitions follow the defined workflow
//   - NewDate is present exactly while the status is New
//   - Can only be created through NewRequest or RestoreRequest
//
// The Request struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Request struct {
	// orderID is the identifier of the order this request packages
	orderID kernel.OrderID

	// products are the order lines to box
	products []Product

	// status represents the current state in the packaging lifecycle
	status Status

	// modifiedDate is when the request last changed status
	modifiedDate time.Time

	// newDate marks when the request arrived; present exactly while status is New
	newDate *time.Time

	// events collects StatusChanged events raised by transitions
	events []StatusChanged

	// isConstructed ensures the request was created via a constructor
	isConstructed bool
}

// NewRequest creates a packaging request for an order entering the warehouse.
// This is the only way to create a fresh Request, ensuring all business
// invariants are maintained.
//
// The request starts in New status with both ModifiedDate and NewDate set to
// the given instant.
//
// Parameters:
//   - orderID: Identifier of the order to package (must be valid)
//   - products: Order lines to box (each valid, product ids distinct; may be empty
//     when lines arrive separately)
//   - now: The arrival instant, stamped as ModifiedDate and NewDate
//
// Returns:
//   - *Request: The created request if all validations pass
//   - error: Validation error if any parameter is invalid
func NewRequest(orderID kernel.OrderID, products []Product, now time.Time) (*Request, error) {
	request := &Request{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		request.setOrderID(orderID),
		request.setProducts(products),
	); err != nil {
		return nil, err
	}

	request.modifiedDate = now
	request.newDate = &now

	return request, nil
}

// RestoreRequest reconstructs a Request aggregate from persistent storage.
// Unlike NewRequest which creates fresh requests in New status, this constructor
// restores a request to its previously persisted state.
//
// The restored request behaves identically to one created through normal domain
// operations. The NewDate/status consistency rule is enforced on restore so a
// corrupted record cannot re-enter the domain.
//
// Parameters:
//   - orderID: Identifier of the packaged order
//   - products: Persisted order lines
//   - status: Persisted lifecycle status
//   - modifiedDate: When the request last changed status
//   - newDate: Arrival marker; must be present exactly when status is New
//
// Returns:
//   - *Request: Restored request aggregate
//   - error: Validation error if any parameter is invalid or inconsistent
func RestoreRequest(
	orderID kernel.OrderID,
	products []Product,
	status Status,
	modifiedDate time.Time,
	newDate *time.Time,
) (*Request, error) {
	request := &Request{
		isConstructed: true,
	}

	if err := errors.Join(
		request.setOrderID(orderID),
		request.setProducts(products),
		request.setStatus(status),
	); err != nil {
		return nil, err
	}

	if (status == New) != (newDate != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"newDate is invalid",
			fmt.Errorf("newDate must be present exactly when status is %s", New),
		)
	}

	request.modifiedDate = modifiedDate
	request.newDate = newDate

	return request, nil
}

// Validate ensures the Request instance was properly constructed through one of
// the factory methods. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the request is valid
//   - ErrRequestIsNotConstructed otherwise
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}

	return nil
}

// IsEqual compares two requests by the order they package.
// Requests are considered equal if they reference the same order.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.orderID.IsEqual(other.orderID)
}

// OrderID returns the identifier of the packaged order.
func (r *Request) OrderID() kernel.OrderID {
	return r.orderID
}

// Products returns the order lines to box.
func (r *Request) Products() []Product {
	return r.products
}

// Status returns the current status of the request.
func (r *Request) Status() Status {
	return r.status
}

// ModifiedDate returns when the request last changed status.
func (r *Request) ModifiedDate() time.Time {
	return r.modifiedDate
}

// NewDate returns the arrival marker.
// Non-nil exactly while the request is in New status.
func (r *Request) NewDate() *time.Time {
	return r.newDate
}

// Events returns the StatusChanged events raised by transitions applied to
// this instance, in order of occurrence.
func (r *Request) Events() []StatusChanged {
	return r.events
}

// Start moves the request from New to InProgress, meaning a packer has picked
// it up and begun boxing.
//
// This method enforces the following business rules:
//   - The request must be in New status
//   - The arrival marker NewDate is cleared
//   - ModifiedDate is stamped with the transition instant
//
// A StatusChanged event is raised on success.
//
// Parameters:
//   - now: The transition instant
//
// Returns:
//   - nil on success
//   - error if the status transition is not allowed
func (r *Request) Start(now time.Time) error {
	newStatus, err := r.status.Start()
	if err != nil {
		return err
	}

	from := r.status
	r.status = newStatus
	r.newDate = nil
	r.modifiedDate = now
	r.raise(from, newStatus, now)

	return nil
}

// Complete moves the request from InProgress to Completed, meaning the order
// is fully boxed and ready for shipping.
//
// This method enforces the following business rules:
//   - The request must be in InProgress status
//   - Completed is a final state with no further transitions
//   - ModifiedDate is stamped with the transition instant
//
// A StatusChanged event is raised on success.
//
// Parameters:
//   - now: The transition instant
//
// Returns:
//   - nil on success
//   - error if the status transition is not allowed
func (r *Request) Complete(now time.Time) error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	from := r.status
	r.status = newStatus
	r.modifiedDate = now
	r.raise(from, newStatus, now)

	return nil
}

// raise records a StatusChanged event for a transition applied to this instance.
func (r *Request) raise(from, to Status, occurredAt time.Time) {
	r.events = append(r.events, StatusChanged{
		OrderID:    r.orderID,
		From:       from,
		To:         to,
		OccurredAt: occurredAt,
	})
}

// setOrderID validates and sets the order identifier.
// This is a private method used only during construction.
func (r *Request) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	r.orderID = orderID
	return nil
}

// setProducts validates and sets the order lines.
// Each line must be properly constructed and product identifiers must be distinct.
// This is a private method used only during construction.
func (r *Request) setProducts(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, product := range products {
		if err := product.Validate(); err != nil {
			return err
		}
		if _, ok := seen[product.ProductID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause(
				"products are invalid",
				fmt.Errorf("product %s appears more than once", product.ProductID()),
			)
		}
		seen[product.ProductID()] = struct{}{}
	}
	r.products = products
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restoration.
func (r *Request) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
