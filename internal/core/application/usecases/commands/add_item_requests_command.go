package commands

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrAddItemRequestsCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrAddItemRequestsCommandIsNotConstructed = errors.New(
	"AddItemRequestsCommand must be created via NewAddItemRequestsCommand constructor",
)

// AddItemRequestsCommand represents a request to append requested-item lines
// to a contract. A term edit: it resets both approvals.
type AddItemRequestsCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	requests   []contract.ItemRequest

	guard guard.ConstructorGuard
}

// NewAddItemRequestsCommand creates a command to append requested-item lines.
func NewAddItemRequestsCommand(
	contractID kernel.UUID,
	requests []contract.ItemRequest,
) (AddItemRequestsCommand, error) {
	cmd := AddItemRequestsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setRequests(requests),
	); err != nil {
		return AddItemRequestsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemRequestsCommand) Validate() error {
	return c.guard.Validate(ErrAddItemRequestsCommandIsNotConstructed)
}

// ContractID returns the contract being edited.
func (c AddItemRequestsCommand) ContractID() kernel.UUID {
	return c.contractID
}

// Requests returns the lines to append, in order.
func (c AddItemRequestsCommand) Requests() []contract.ItemRequest {
	return slices.Clone(c.requests)
}

func (c *AddItemRequestsCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *AddItemRequestsCommand) setRequests(requests []contract.ItemRequest) error {
	if len(requests) == 0 {
		return errs.NewValueIsRequiredError("requests")
	}
	for _, request := range requests {
		if err := request.Validate(); err != nil {
			return err
		}
	}
	c.requests = slices.Clone(requests)
	return nil
}
