package delivery

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not created
	// through the NewDelivery or RestoreDelivery factory methods. This ensures all
	// deliveries are properly validated.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")
)

// Delivery represents the shipment of a packaged order. It is the aggregate
// root that manages the delivery lifecycle from creation through pickup to
// completion or failure.
//
// Delivery follows these invariants:
//   - Must have a valid order identifier
//   - Must have a valid, immutable destination address
//   - Status transitions follow the defined workflow
//   - The IsNew marker holds exactly while the status is New
//   - Can only be created through NewDelivery or RestoreDelivery
//
// The Delivery struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Delivery struct {
	// orderID is the identifier of the shipped order
	orderID kernel.OrderID

	// address is the immutable destination
	address Address

	// status represents the current state in the delivery lifecycle
	status Status

	// modifiedDate is when the delivery last changed status
	modifiedDate time.Time

	// events collects StatusChanged events raised by transitions
	events []StatusChanged

	// isConstructed ensures the delivery was created via a constructor
	isConstructed bool
}

// NewDelivery creates a delivery for a packaged order ready to ship.
// This is the only way to create a fresh Delivery, ensuring all business
// invariants are maintained.
//
// The delivery starts in New status with ModifiedDate set to the given
// instant.
//
// Parameters:
//   - orderID: Identifier of the order to ship (must be valid)
//   - address: Destination address (must be properly constructed)
//   - now: The creation instant, stamped as ModifiedDate
//
// Returns:
//   - *Delivery: The created delivery if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDelivery(orderID kernel.OrderID, address Address, now time.Time) (*Delivery, error) {
	delivery := &Delivery{
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setOrderID(orderID),
		delivery.setAddress(address),
	); err != nil {
		return nil, err
	}

	delivery.modifiedDate = now

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage.
// Unlike NewDelivery which creates fresh deliveries in New status, this
// constructor restores a delivery to its previously persisted state.
//
// Parameters:
//   - orderID: Identifier of the shipped order
//   - address: Persisted destination address
//   - status: Persisted lifecycle status
//   - modifiedDate: When the delivery last changed status
//
// Returns:
//   - *Delivery: Restored delivery aggregate
//   - error: Validation error if any parameter is invalid
func RestoreDelivery(
	orderID kernel.OrderID,
	address Address,
	status Status,
	modifiedDate time.Time,
) (*Delivery, error) {
	delivery := &Delivery{
		isConstructed: true,
	}

	if err := errors.Join(
		delivery.setOrderID(orderID),
		delivery.setAddress(address),
		delivery.setStatus(status),
	); err != nil {
		return nil, err
	}

	delivery.modifiedDate = modifiedDate

	return delivery, nil
}

// Validate ensures the Delivery instance was properly constructed through one
// of the factory methods. This prevents bypassing validation by directly
// instantiating the struct.
//
// Returns:
//   - nil if the delivery is valid
//   - ErrDeliveryIsNotConstructed otherwise
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by the order they ship.
// Deliveries are considered equal if they reference the same order.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.orderID.IsEqual(other.orderID)
}

// OrderID returns the identifier of the shipped order.
func (d *Delivery) OrderID() kernel.OrderID {
	return d.orderID
}

// Address returns the immutable destination address.
func (d *Delivery) Address() Address {
	return d.address
}

// Status returns the current status of the delivery.
func (d *Delivery) Status() Status {
	return d.status
}

// ModifiedDate returns when the delivery last changed status.
func (d *Delivery) ModifiedDate() time.Time {
	return d.modifiedDate
}

// IsNew reports whether the delivery is still waiting for a driver.
// Holds exactly while the status is New; persisted as a sparse marker so
// pending deliveries can be listed efficiently.
func (d *Delivery) IsNew() bool {
	return d.status == New
}

// Events returns the StatusChanged events raised by transitions applied to
// this instance, in order of occurrence.
func (d *Delivery) Events() []StatusChanged {
	return d.events
}

// Start moves the delivery from New to InProgress, meaning a driver has
// picked up the package.
//
// This method enforces the following business rules:
//   - The delivery must be in New status
//   - The IsNew marker is cleared as a consequence of leaving New
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
func (d *Delivery) Start(now time.Time) error {
	newStatus, err := d.status.Start()
	if err != nil {
		return err
	}

	d.applyTransition(newStatus, now)

	return nil
}

// Fail marks the delivery as undeliverable.
//
// This method enforces the following business rules:
//   - The delivery must be in InProgress status
//   - Failed is a final state with no further transitions
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
func (d *Delivery) Fail(now time.Time) error {
	newStatus, err := d.status.Fail()
	if err != nil {
		return err
	}

	d.applyTransition(newStatus, now)

	return nil
}

// Complete marks the package as delivered to its destination.
//
// This method enforces the following business rules:
//   - The delivery must be in InProgress status
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
func (d *Delivery) Complete(now time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.applyTransition(newStatus, now)

	return nil
}

// applyTransition records a validated status change and its StatusChanged event.
func (d *Delivery) applyTransition(to Status, now time.Time) {
	from := d.status
	d.status = to
	d.modifiedDate = now
	d.events = append(d.events, StatusChanged{
		OrderID:    d.orderID,
		From:       from,
		To:         to,
		OccurredAt: now,
	})
}

// setOrderID validates and sets the order identifier.
// This is a private method used only during construction.
func (d *Delivery) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

// setAddress validates and sets the destination address.
// This is a private method used only during construction.
func (d *Delivery) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	d.address = address
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restoration.
func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
