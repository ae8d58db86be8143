package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrRemoveEmployeeFromBusinessCommandIsNotConstructed is returned when the
// command was not built through its constructor.
var ErrRemoveEmployeeFromBusinessCommandIsNotConstructed = errors.New(
	"RemoveEmployeeFromBusinessCommand must be created via NewRemoveEmployeeFromBusinessCommand constructor",
)

// RemoveEmployeeFromBusinessCommand represents a request to take an employee
// off a business's roster. The employee record does not survive the
// membership and is deleted with it.
type RemoveEmployeeFromBusinessCommand struct { //nolint:recvcheck //using for validation
	businessID kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveEmployeeFromBusinessCommand creates a command to unstaff a business.
func NewRemoveEmployeeFromBusinessCommand(
	businessID kernel.UUID,
	employeeID kernel.UUID,
) (RemoveEmployeeFromBusinessCommand, error) {
	cmd := RemoveEmployeeFromBusinessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBusinessID(businessID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return RemoveEmployeeFromBusinessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveEmployeeFromBusinessCommand) Validate() error {
	return c.guard.Validate(ErrRemoveEmployeeFromBusinessCommandIsNotConstructed)
}

// BusinessID returns the business losing the employee.
func (c RemoveEmployeeFromBusinessCommand) BusinessID() kernel.UUID {
	return c.businessID
}

// EmployeeID returns the employee being removed.
func (c RemoveEmployeeFromBusinessCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *RemoveEmployeeFromBusinessCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("businessId", err)
	}
	c.businessID = businessID
	return nil
}

func (c *RemoveEmployeeFromBusinessCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	c.employeeID = employeeID
	return nil
}
