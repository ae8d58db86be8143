package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrCancelContractCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrCancelContractCommandIsNotConstructed = errors.New(
	"CancelContractCommand must be created via NewCancelContractCommand constructor",
)

// CancelContractCommand represents one side's withdrawal from a contract.
// The side is whichever the acting employee works for.
type CancelContractCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelContractCommand creates a command to cancel a contract.
func NewCancelContractCommand(contractID, employeeID kernel.UUID) (CancelContractCommand, error) {
	cmd := CancelContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return CancelContractCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelContractCommand) Validate() error {
	return c.guard.Validate(ErrCancelContractCommandIsNotConstructed)
}

// ContractID returns the contract being cancelled.
func (c CancelContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

// EmployeeID returns the acting employee.
func (c CancelContractCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *CancelContractCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *CancelContractCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	c.employeeID = employeeID
	return nil
}
