package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrCreateItemCommandIsNotConstructed is returned when the command was not
// built through its constructor.
var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand represents a request to provision a new physical item
// into the owning business's inventory, seeding its location log with the
// owner's address.
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	itemTypeID    kernel.UUID
	amount        int
	unitOfMeasure string
	ownerID       kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateItemCommand creates a command to provision an item.
func NewCreateItemCommand(
	itemID kernel.UUID,
	itemTypeID kernel.UUID,
	amount int,
	unitOfMeasure string,
	ownerID kernel.UUID,
) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setItemTypeID(itemTypeID),
		cmd.setAmount(amount),
		cmd.setUnitOfMeasure(unitOfMeasure),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

// ItemID returns the unique identifier for the new item.
func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

// ItemTypeID returns the catalog entry the item is a unit of.
func (c CreateItemCommand) ItemTypeID() kernel.UUID {
	return c.itemTypeID
}

// Amount returns the amount of medication carried by the item.
func (c CreateItemCommand) Amount() int {
	return c.amount
}

// UnitOfMeasure returns the unit the amount is expressed in.
func (c CreateItemCommand) UnitOfMeasure() string {
	return c.unitOfMeasure
}

// OwnerID returns the business taking first custody of the item.
func (c CreateItemCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *CreateItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateItemCommand) setItemTypeID(itemTypeID kernel.UUID) error {
	if err := itemTypeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("itemTypeId", err)
	}
	c.itemTypeID = itemTypeID
	return nil
}

func (c *CreateItemCommand) setAmount(amount int) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 1, int(^uint(0)>>1))
	}
	c.amount = amount
	return nil
}

func (c *CreateItemCommand) setUnitOfMeasure(unitOfMeasure string) error {
	if unitOfMeasure == "" {
		return errs.NewValueIsRequiredError("unitOfMeasure")
	}
	c.unitOfMeasure = unitOfMeasure
	return nil
}

func (c *CreateItemCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerId", err)
	}
	c.ownerID = ownerID
	return nil
}
