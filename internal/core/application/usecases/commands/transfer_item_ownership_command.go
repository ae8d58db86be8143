package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrTransferItemOwnershipCommandIsNotConstructed is returned when the
// command was not built through its constructor.
var ErrTransferItemOwnershipCommandIsNotConstructed = errors.New(
	"TransferItemOwnershipCommand must be created via NewTransferItemOwnershipCommand constructor",
)

// TransferItemOwnershipCommand represents a manual custody move of a single
// item between two businesses, outside any shipment flow. The new location
// is optional; when absent the receiving business's address is appended to
// the item's location log.
type TransferItemOwnershipCommand struct { //nolint:recvcheck //using for validation
	itemID         kernel.UUID
	fromBusinessID kernel.UUID
	toBusinessID   kernel.UUID
	newLocation    *kernel.Address

	guard guard.ConstructorGuard
}

// NewTransferItemOwnershipCommand creates a command for a manual custody move.
func NewTransferItemOwnershipCommand(
	itemID kernel.UUID,
	fromBusinessID kernel.UUID,
	toBusinessID kernel.UUID,
	newLocation *kernel.Address,
) (TransferItemOwnershipCommand, error) {
	cmd := TransferItemOwnershipCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setFromBusinessID(fromBusinessID),
		cmd.setToBusinessID(toBusinessID),
		cmd.setNewLocation(newLocation),
	); err != nil {
		return TransferItemOwnershipCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransferItemOwnershipCommand) Validate() error {
	return c.guard.Validate(ErrTransferItemOwnershipCommandIsNotConstructed)
}

// ItemID returns the item changing hands.
func (c TransferItemOwnershipCommand) ItemID() kernel.UUID {
	return c.itemID
}

// FromBusinessID returns the business surrendering custody.
func (c TransferItemOwnershipCommand) FromBusinessID() kernel.UUID {
	return c.fromBusinessID
}

// ToBusinessID returns the business taking custody.
func (c TransferItemOwnershipCommand) ToBusinessID() kernel.UUID {
	return c.toBusinessID
}

// NewLocation returns the item's new location, or nil to use the receiving
// business's address.
func (c TransferItemOwnershipCommand) NewLocation() *kernel.Address {
	return c.newLocation
}

func (c *TransferItemOwnershipCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemId", err)
	}
	c.itemID = itemID
	return nil
}

func (c *TransferItemOwnershipCommand) setFromBusinessID(fromBusinessID kernel.UUID) error {
	if err := fromBusinessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("fromBusinessId", err)
	}
	c.fromBusinessID = fromBusinessID
	return nil
}

func (c *TransferItemOwnershipCommand) setToBusinessID(toBusinessID kernel.UUID) error {
	if err := toBusinessID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("toBusinessId", err)
	}
	c.toBusinessID = toBusinessID
	return nil
}

func (c *TransferItemOwnershipCommand) setNewLocation(newLocation *kernel.Address) error {
	if newLocation != nil {
		if err := newLocation.Validate(); err != nil {
			return err
		}
	}
	c.newLocation = newLocation
	return nil
}
