package commands

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrRemoveItemRequestsCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrRemoveItemRequestsCommandIsNotConstructed = errors.New(
	"RemoveItemRequestsCommand must be created via NewRemoveItemRequestsCommand constructor",
)

// RemoveItemRequestsCommand represents a request to remove requested-item
// lines from a contract by position. A term edit: it resets both approvals.
type RemoveItemRequestsCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	indexes    []int

	guard guard.ConstructorGuard
}

// NewRemoveItemRequestsCommand creates a command to remove requested-item lines.
func NewRemoveItemRequestsCommand(contractID kernel.UUID, indexes []int) (RemoveItemRequestsCommand, error) {
	cmd := RemoveItemRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setIndexes(indexes),
	); err != nil {
		return RemoveItemRequestsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemRequestsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemRequestsCommandIsNotConstructed)
}

// ContractID returns the contract being edited.
func (c RemoveItemRequestsCommand) ContractID() kernel.UUID {
	return c.contractID
}

// Indexes returns the positions to remove.
func (c RemoveItemRequestsCommand) Indexes() []int {
	return slices.Clone(c.indexes)
}

func (c *RemoveItemRequestsCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *RemoveItemRequestsCommand) setIndexes(indexes []int) error {
	if len(indexes) == 0 {
		return errs.NewValueIsRequiredError("indexes")
	}
	for _, index := range indexes {
		if index < 0 {
			return errs.NewValueIsOutOfRangeError("indexes", index, 0, int(^uint(0)>>1))
		}
	}
	c.indexes = slices.Clone(indexes)
	return nil
}
