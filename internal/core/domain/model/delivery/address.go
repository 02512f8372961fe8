package delivery

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via the NewAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via the NewAddress constructor")

// Address is an immutable value object describing where a package is shipped:
// the recipient's name, street address, city and country.
//
// All four fields are required. An address never changes once the delivery is
// created; redirecting a shipment means failing the delivery and creating a
// new one.
//
// The zero value of Address is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	addr, err := delivery.NewAddress("John Doe", "123 Birch Street", "Bastogne", "Belgium")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	name          string
	streetAddress string
	city          string
	country       string
	guard         guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified recipient and location.
// Every field must be non-empty.
//
// Returns:
//   - Address: A valid address instance
//   - error: Validation error naming each missing field
func NewAddress(name, streetAddress, city, country string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setName(name),
		address.setStreetAddress(streetAddress),
		address.setCity(city),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed using the constructor.
// The zero value of Address is invalid and will fail this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Name returns the recipient's name.
func (a Address) Name() string {
	return a.name
}

// StreetAddress returns the street line of the address.
func (a Address) StreetAddress() string {
	return a.streetAddress
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// String returns a single-line representation of the address.
// This method implements the fmt.Stringer interface and is intended for
// logging and debugging.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s, %s", a.name, a.streetAddress, a.city, a.country)
}

// IsEqual compares two addresses field by field.
// Both addresses must be properly constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

// setName validates and sets the recipient's name.
// This is a private method used only during construction.
func (a *Address) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

// setStreetAddress validates and sets the street line.
// This is a private method used only during construction.
func (a *Address) setStreetAddress(streetAddress string) error {
	if streetAddress == "" {
		return errs.NewValueIsRequiredError("streetAddress")
	}
	a.streetAddress = streetAddress
	return nil
}

// setCity validates and sets the city.
// This is a private method used only during construction.
func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

// setCountry validates and sets the country.
// This is a private method used only during construction.
func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
