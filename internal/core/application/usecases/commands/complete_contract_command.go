package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrCompleteContractCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrCompleteContractCommandIsNotConstructed = errors.New(
	"CompleteContractCommand must be created via NewCompleteContractCommand constructor",
)

// CompleteContractCommand represents a request to close out a contract whose
// shipments have all arrived.
type CompleteContractCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteContractCommand creates a command to complete a contract.
func NewCompleteContractCommand(contractID kernel.UUID) (CompleteContractCommand, error) {
	cmd := CompleteContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setContractID(contractID); err != nil {
		return CompleteContractCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteContractCommand) Validate() error {
	return c.guard.Validate(ErrCompleteContractCommandIsNotConstructed)
}

// ContractID returns the contract being completed.
func (c CompleteContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

func (c *CompleteContractCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}
