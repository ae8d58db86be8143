// Package employee contains the Employee aggregate: a person acting on
// behalf of exactly one business. Commands authorize acting employees by
// comparing WorksFor against the business a given operation requires.
package employee

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// Domain errors for employee operations.
var (
	// ErrEmployeeIsNotConstructed is returned when using an improperly initialized Employee.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")
	// ErrNameIsRequired is returned when the first or last name is missing.
	ErrNameIsRequired = errs.NewValueIsRequiredError("first and last name")
	// ErrEmailIsRequired is returned when the email is missing.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
)

// Employee represents a person employed by a supply-chain business.
// The worksFor reference ties every employee to exactly one business and
// drives all authorization decisions in the contract and shipment commands.
type Employee struct {
	id          kernel.UUID
	firstName   string
	lastName    string
	email       string
	phoneNumber string
	// employeeType distinguishes Admin from Regular staff
	employeeType Type
	// worksFor is the employing business id
	worksFor kernel.UUID
	guard    guard.ConstructorGuard
}

// NewEmployee creates a new Employee bound to the given business.
// The phone number is optional; everything else is required.
func NewEmployee(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	employeeType Type,
	worksFor kernel.UUID,
) (*Employee, error) {
	e := &Employee{
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(firstName, lastName),
		e.setEmail(email),
		e.setType(employeeType),
		e.setWorksFor(worksFor),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// RestoreEmployee reconstructs an Employee from persistent storage.
func RestoreEmployee(
	id kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	employeeType Type,
	worksFor kernel.UUID,
) (*Employee, error) {
	return NewEmployee(id, firstName, lastName, email, phoneNumber, employeeType, worksFor)
}

// Validate checks that the Employee was built through a constructor.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

// IsEqual compares two employees by their unique identifiers.
func (e *Employee) IsEqual(other *Employee) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the unique identifier of the employee.
func (e *Employee) ID() kernel.UUID {
	return e.id
}

// FirstName returns the employee's first name.
func (e *Employee) FirstName() string {
	return e.firstName
}

// LastName returns the employee's last name.
func (e *Employee) LastName() string {
	return e.lastName
}

// Email returns the employee's email address.
func (e *Employee) Email() string {
	return e.email
}

// PhoneNumber returns the employee's phone number, possibly empty.
func (e *Employee) PhoneNumber() string {
	return e.phoneNumber
}

// Type returns whether the employee is Admin or Regular staff.
func (e *Employee) Type() Type {
	return e.employeeType
}

// WorksFor returns the employing business id.
func (e *Employee) WorksFor() kernel.UUID {
	return e.worksFor
}

// UpdateInfo changes the employee's contact details.
// Empty strings leave the corresponding field untouched.
func (e *Employee) UpdateInfo(firstName, lastName, email, phoneNumber string) {
	if firstName != "" {
		e.firstName = firstName
	}
	if lastName != "" {
		e.lastName = lastName
	}
	if email != "" {
		e.email = email
	}
	if phoneNumber != "" {
		e.phoneNumber = phoneNumber
	}
}

// ChangeType reassigns the employee between Admin and Regular staff.
func (e *Employee) ChangeType(employeeType Type) error {
	if err := employeeType.Validate(); err != nil {
		return err
	}
	e.employeeType = employeeType
	return nil
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Employee) setName(firstName, lastName string) error {
	if firstName == "" || lastName == "" {
		return ErrNameIsRequired
	}
	e.firstName = firstName
	e.lastName = lastName
	return nil
}

func (e *Employee) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	e.email = email
	return nil
}

func (e *Employee) setType(employeeType Type) error {
	if err := employeeType.Validate(); err != nil {
		return err
	}
	e.employeeType = employeeType
	return nil
}

func (e *Employee) setWorksFor(worksFor kernel.UUID) error {
	if err := worksFor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("worksFor", err)
	}
	e.worksFor = worksFor
	return nil
}
