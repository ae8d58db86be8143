package kernel

import (
	"errors"
	"fmt"

	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address. Addresses must be created via NewAddress.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object. It identifies business
// premises and item locations; every entry in an item's location log is an
// Address. Street, city, country, and zip are required; state is optional
// since not every country uses one.
//
// Example:
//
//	addr, err := kernel.NewAddress("One Post Street", "San Francisco", "CA", "USA", "94104")
//	if err != nil {
//	    // handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	state   string
	country string
	zip     string
	guard   guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street, city, country, and zip must
// be non-empty; state may be empty.
func NewAddress(street, city, state, country, zip string) (Address, error) {
	addr := Address{
		state: state,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
		addr.setCountry(country),
		addr.setZip(zip),
	); err != nil {
		return Address{}, err
	}

	return addr, nil
}

// Validate checks that the Address was built through NewAddress.
// The zero value fails this validation.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or province, possibly empty.
func (a Address) State() string {
	return a.state
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// Zip returns the postal code of the address.
func (a Address) Zip() string {
	return a.zip
}

// String renders the address on a single line for logs and error messages.
func (a Address) String() string {
	if a.state == "" {
		return fmt.Sprintf("%s, %s, %s %s", a.street, a.city, a.country, a.zip)
	}
	return fmt.Sprintf("%s, %s, %s, %s %s", a.street, a.city, a.state, a.country, a.zip)
}

// IsEqual compares two addresses field by field. Both must be properly
// constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a == other, nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}

func (a *Address) setZip(zip string) error {
	if zip == "" {
		return errs.NewValueIsRequiredError("zip")
	}
	a.zip = zip
	return nil
}
