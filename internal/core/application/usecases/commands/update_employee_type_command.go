package commands

import (
	"errors"

	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/guard"
)

// ErrUpdateEmployeeTypeCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrUpdateEmployeeTypeCommandIsNotConstructed = errors.New(
	"UpdateEmployeeTypeCommand must be created via NewUpdateEmployeeTypeCommand constructor",
)

// UpdateEmployeeTypeCommand represents a request to reassign an employee
// between Admin and Regular staff.
type UpdateEmployeeTypeCommand struct { //nolint:recvcheck //using for validation
	employeeID      kernel.UUID
	newEmployeeType employee.Type

	guard guard.ConstructorGuard
}

// NewUpdateEmployeeTypeCommand creates a command to change an employee's type.
func NewUpdateEmployeeTypeCommand(
	employeeID kernel.UUID,
	newEmployeeType employee.Type,
) (UpdateEmployeeTypeCommand, error) {
	cmd := UpdateEmployeeTypeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setNewEmployeeType(newEmployeeType),
	); err != nil {
		return UpdateEmployeeTypeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateEmployeeTypeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateEmployeeTypeCommandIsNotConstructed)
}

// EmployeeID returns the employee being reassigned.
func (c UpdateEmployeeTypeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// NewEmployeeType returns the replacement staff type.
func (c UpdateEmployeeTypeCommand) NewEmployeeType() employee.Type {
	return c.newEmployeeType
}

func (c *UpdateEmployeeTypeCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	c.employeeID = employeeID
	return nil
}

func (c *UpdateEmployeeTypeCommand) setNewEmployeeType(employeeType employee.Type) error {
	if err := employeeType.Validate(); err != nil {
		return err
	}
	c.newEmployeeType = employeeType
	return nil
}
