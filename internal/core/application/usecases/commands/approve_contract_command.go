package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrApproveContractCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrApproveContractCommandIsNotConstructed = errors.New(
	"ApproveContractCommand must be created via NewApproveContractCommand constructor",
)

// ApproveContractCommand represents one side's confirmation of a contract's
// current terms. The side is whichever the acting employee works for.
type ApproveContractCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveContractCommand creates a command to approve a contract.
func NewApproveContractCommand(contractID, employeeID kernel.UUID) (ApproveContractCommand, error) {
	cmd := ApproveContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return ApproveContractCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveContractCommand) Validate() error {
	return c.guard.Validate(ErrApproveContractCommandIsNotConstructed)
}

// ContractID returns the contract being approved.
func (c ApproveContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

// EmployeeID returns the acting employee.
func (c ApproveContractCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *ApproveContractCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *ApproveContractCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	c.employeeID = employeeID
	return nil
}
