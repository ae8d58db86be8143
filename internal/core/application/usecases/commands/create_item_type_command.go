package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrCreateItemTypeCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrCreateItemTypeCommandIsNotConstructed = errors.New(
	"CreateItemTypeCommand must be created via NewCreateItemTypeCommand constructor",
)

// CreateItemTypeCommand represents a request to register a medication in the
// item-type catalog.
type CreateItemTypeCommand struct { //nolint:recvcheck //using for validation
	itemTypeID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewCreateItemTypeCommand creates a command to register a catalog entry.
func NewCreateItemTypeCommand(itemTypeID kernel.UUID, name string) (CreateItemTypeCommand, error) {
	cmd := CreateItemTypeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItemTypeID(itemTypeID),
		cmd.setName(name),
	); err != nil {
		return CreateItemTypeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateItemTypeCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemTypeCommandIsNotConstructed)
}

// ItemTypeID returns the unique identifier for the catalog entry.
func (c CreateItemTypeCommand) ItemTypeID() kernel.UUID {
	return c.itemTypeID
}

// Name returns the medication name.
func (c CreateItemTypeCommand) Name() string {
	return c.name
}

func (c *CreateItemTypeCommand) setItemTypeID(itemTypeID kernel.UUID) error {
	if err := itemTypeID.Validate(); err != nil {
		return err
	}
	c.itemTypeID = itemTypeID
	return nil
}

func (c *CreateItemTypeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
