package packaging

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// DefaultQuantity is the number of units assumed for an order line that does
// not carry an explicit quantity.
const DefaultQuantity = 1

// ErrProductIsNotConstructed is returned when attempting to use an improperly
// initialized Product. Products must be created via the NewProduct constructor.
var ErrProductIsNotConstructed = errs.NewValueIsRequiredError(
	"product must be created via the NewProduct constructor")

// Product is an immutable value object describing one line of a packaging
// request: which product to box and how many units of it.
//
// The zero value of Product is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	line, err := packaging.NewProduct("prod-5402", 2)
//	if err != nil {
//	    // Handle validation error
//	}
type Product struct { //nolint:recvcheck //using for validation
	productID string
	quantity  int
	guard     guard.ConstructorGuard
}

// NewProduct creates a new Product line with the specified identifier and
// unit count. The product identifier must be non-empty and the quantity must
// be at least 1; callers that have no explicit quantity pass DefaultQuantity.
//
// Returns:
//   - Product: A valid product line
//   - error: Validation error if the identifier is empty or the quantity is not positive
func NewProduct(productID string, quantity int) (Product, error) {
	product := Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(product.setProductID(productID), product.setQuantity(quantity)); err != nil {
		return Product{}, err
	}

	return product, nil
}

// Validate checks if the Product was properly constructed using the constructor.
// The zero value of Product is invalid and will fail this validation.
func (p Product) Validate() error {
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ProductID returns the identifier of the product to box.
func (p Product) ProductID() string {
	return p.productID
}

// Quantity returns the number of units to box. Always at least 1 for
// properly constructed instances.
func (p Product) Quantity() int {
	return p.quantity
}

// IsEqual compares two product lines for equality.
// Two lines are equal if they reference the same product with the same quantity.
// Both lines must be properly constructed for the comparison to succeed.
func (p Product) IsEqual(other Product) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p == other, nil
}

// setProductID validates and sets the product identifier.
// This is a private method used only during construction.
func (p *Product) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	p.productID = productID
	return nil
}

// setQuantity validates and sets the unit count.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (p *Product) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	p.quantity = quantity
	return nil
}
