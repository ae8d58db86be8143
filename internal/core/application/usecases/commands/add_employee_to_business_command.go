package commands

import (
	"errors"

	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrAddEmployeeToBusinessCommandIsNotConstructed is returned when the
// command was not built through its constructor.
var ErrAddEmployeeToBusinessCommandIsNotConstructed = errors.New(
	"AddEmployeeToBusinessCommand must be created via NewAddEmployeeToBusinessCommand constructor",
)

// AddEmployeeToBusinessCommand represents a request to create an employee
// record and add it to a business's roster in one atomic step.
type AddEmployeeToBusinessCommand struct { //nolint:recvcheck //using for validation
	employeeID   kernel.UUID
	businessID   kernel.UUID
	firstName    string
	lastName     string
	email        string
	phoneNumber  string
	employeeType employee.Type

	guard guard.ConstructorGuard
}

// NewAddEmployeeToBusinessCommand creates a command to staff a business.
func NewAddEmployeeToBusinessCommand(
	employeeID kernel.UUID,
	businessID kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
	employeeType employee.Type,
) (AddEmployeeToBusinessCommand, error) {
	cmd := AddEmployeeToBusinessCommand{
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setBusinessID(businessID),
		cmd.setEmployeeType(employeeType),
	); err != nil {
		return AddEmployeeToBusinessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddEmployeeToBusinessCommand) Validate() error {
	return c.guard.Validate(ErrAddEmployeeToBusinessCommandIsNotConstructed)
}

// EmployeeID returns the unique identifier for the new employee.
func (c AddEmployeeToBusinessCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// BusinessID returns the employing business.
func (c AddEmployeeToBusinessCommand) BusinessID() kernel.UUID {
	return c.businessID
}

// FirstName returns the employee's first name.
func (c AddEmployeeToBusinessCommand) FirstName() string {
	return c.firstName
}

// LastName returns the employee's last name.
func (c AddEmployeeToBusinessCommand) LastName() string {
	return c.lastName
}

// Email returns the employee's email address.
func (c AddEmployeeToBusinessCommand) Email() string {
	return c.email
}

// PhoneNumber returns the employee's phone number, possibly empty.
func (c AddEmployeeToBusinessCommand) PhoneNumber() string {
	return c.phoneNumber
}

// EmployeeType returns whether the employee is Admin or Regular staff.
func (c AddEmployeeToBusinessCommand) EmployeeType() employee.Type {
	return c.employeeType
}

func (c *AddEmployeeToBusinessCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}

func (c *AddEmployeeToBusinessCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessId", err)
	}
	c.businessID = businessID
	return nil
}

func (c *AddEmployeeToBusinessCommand) setEmployeeType(employeeType employee.Type) error {
	if err := employeeType.Validate(); err != nil {
		return err
	}
	c.employeeType = employeeType
	return nil
}
