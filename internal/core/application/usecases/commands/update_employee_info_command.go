package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/guard"
)

// ErrUpdateEmployeeInfoCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrUpdateEmployeeInfoCommandIsNotConstructed = errors.New(
	"UpdateEmployeeInfoCommand must be created via NewUpdateEmployeeInfoCommand constructor",
)

// UpdateEmployeeInfoCommand represents a request to change an employee's
// contact details. Empty fields leave the corresponding values untouched.
type UpdateEmployeeInfoCommand struct { //nolint:recvcheck //using for validation
	employeeID  kernel.UUID
	firstName   string
	lastName    string
	email       string
	phoneNumber string

	guard guard.ConstructorGuard
}

// NewUpdateEmployeeInfoCommand creates a command to update employee contact details.
func NewUpdateEmployeeInfoCommand(
	employeeID kernel.UUID,
	firstName string,
	lastName string,
	email string,
	phoneNumber string,
) (UpdateEmployeeInfoCommand, error) {
	cmd := UpdateEmployeeInfoCommand{
		firstName:   firstName,
		lastName:    lastName,
		email:       email,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := cmd.setEmployeeID(employeeID); err != nil {
		return UpdateEmployeeInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEmployeeInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmployeeInfoCommandIsNotConstructed)
}

// EmployeeID returns the employee being updated.
func (c UpdateEmployeeInfoCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// FirstName returns the new first name, possibly empty for "unchanged".
func (c UpdateEmployeeInfoCommand) FirstName() string {
	return c.firstName
}

// LastName returns the new last name, possibly empty for "unchanged".
func (c UpdateEmployeeInfoCommand) LastName() string {
	return c.lastName
}

// Email returns the new email, possibly empty for "unchanged".
func (c UpdateEmployeeInfoCommand) Email() string {
	return c.email
}

// PhoneNumber returns the new phone number, possibly empty for "unchanged".
func (c UpdateEmployeeInfoCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c *UpdateEmployeeInfoCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}
