package commands

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrRemoveShipmentsCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrRemoveShipmentsCommandIsNotConstructed = errors.New(
	"RemoveShipmentsCommand must be created via NewRemoveShipmentsCommand constructor",
)

// RemoveShipmentsCommand represents a request to remove carriage legs from a
// contract by position. A term edit: it resets both approvals.
type RemoveShipmentsCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	indexes    []int

	guard guard.ConstructorGuard
}

// NewRemoveShipmentsCommand creates a command to remove shipments.
func NewRemoveShipmentsCommand(contractID kernel.UUID, indexes []int) (RemoveShipmentsCommand, error) {
	cmd := RemoveShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setIndexes(indexes),
	); err != nil {
		return RemoveShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveShipmentsCommandIsNotConstructed)
}

// ContractID returns the contract being edited.
func (c RemoveShipmentsCommand) ContractID() kernel.UUID {
	return c.contractID
}

// Indexes returns the positions to remove.
func (c RemoveShipmentsCommand) Indexes() []int {
	return slices.Clone(c.indexes)
}

func (c *RemoveShipmentsCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *RemoveShipmentsCommand) setIndexes(indexes []int) error {
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
