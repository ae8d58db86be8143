package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrUpdateItemRequestCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrUpdateItemRequestCommandIsNotConstructed = errors.New(
	"UpdateItemRequestCommand must be created via NewUpdateItemRequestCommand constructor",
)

// UpdateItemRequestCommand represents a request to change the quantity of a
// requested-item line by position. A term edit: it resets both approvals.
type UpdateItemRequestCommand struct { //nolint:recvcheck //using for validation
	contractID       kernel.UUID
	itemRequestIndex int
	newQuantity      int

	guard guard.ConstructorGuard
}

// NewUpdateItemRequestCommand creates a command to change a requested-item line's quantity.
func NewUpdateItemRequestCommand(
	contractID kernel.UUID,
	itemRequestIndex int,
	newQuantity int,
) (UpdateItemRequestCommand, error) {
	cmd := UpdateItemRequestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setItemRequestIndex(itemRequestIndex),
		cmd.setNewQuantity(newQuantity),
	); err != nil {
		return UpdateItemRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateItemRequestCommand) Validate() error {
	return c.guard.Validate(ErrUpdateItemRequestCommandIsNotConstructed)
}

// ContractID returns the contract being edited.
func (c UpdateItemRequestCommand) ContractID() kernel.UUID {
	return c.contractID
}

// ItemRequestIndex returns the position of the line to change.
func (c UpdateItemRequestCommand) ItemRequestIndex() int {
	return c.itemRequestIndex
}

// NewQuantity returns the replacement quantity.
func (c UpdateItemRequestCommand) NewQuantity() int {
	return c.newQuantity
}

func (c *UpdateItemRequestCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *UpdateItemRequestCommand) setItemRequestIndex(index int) error {
	if index < 0 {
		return errs.NewValueIsOutOfRangeError("itemRequestIndex", index, 0, int(^uint(0)>>1))
	}
	c.itemRequestIndex = index
	return nil
}

func (c *UpdateItemRequestCommand) setNewQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("newQuantity", quantity, 1, int(^uint(0)>>1))
	}
	c.newQuantity = quantity
	return nil
}
