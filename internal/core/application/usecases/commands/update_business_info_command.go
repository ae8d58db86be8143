package commands

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/guard"
)

// ErrUpdateBusinessInfoCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrUpdateBusinessInfoCommandIsNotConstructed = errors.New(
	"UpdateBusinessInfoCommand must be created via NewUpdateBusinessInfoCommand constructor",
)

// UpdateBusinessInfoCommand represents a request to change a business's
// contact details. Empty fields and a nil address leave the corresponding
// values untouched.
type UpdateBusinessInfoCommand struct { //nolint:recvcheck //using for validation
	businessID kernel.UUID
	name       string
	pocName    string
	pocEmail   string
	address    *kernel.Address

	guard guard.ConstructorGuard
}

// NewUpdateBusinessInfoCommand creates a command to update business contact details.
func NewUpdateBusinessInfoCommand(
	businessID kernel.UUID,
	name string,
	pocName string,
	pocEmail string,
	address *kernel.Address,
) (UpdateBusinessInfoCommand, error) {
	cmd := UpdateBusinessInfoCommand{
		name:     name,
		pocName:  pocName,
		pocEmail: pocEmail,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBusinessID(businessID),
		cmd.setAddress(address),
	); err != nil {
		return UpdateBusinessInfoCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateBusinessInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBusinessInfoCommandIsNotConstructed)
}

// BusinessID returns the business being updated.
func (c UpdateBusinessInfoCommand) BusinessID() kernel.UUID {
	return c.businessID
}

// Name returns the new name, possibly empty for "unchanged".
func (c UpdateBusinessInfoCommand) Name() string {
	return c.name
}

// PointOfContactName returns the new contact name, possibly empty for "unchanged".
func (c UpdateBusinessInfoCommand) PointOfContactName() string {
	return c.pocName
}

// PointOfContactEmail returns the new contact email, possibly empty for "unchanged".
func (c UpdateBusinessInfoCommand) PointOfContactEmail() string {
	return c.pocEmail
}

// Address returns the new premises address, or nil for "unchanged".
func (c UpdateBusinessInfoCommand) Address() *kernel.Address {
	return c.address
}

func (c *UpdateBusinessInfoCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}
	c.businessID = businessID
	return nil
}

func (c *UpdateBusinessInfoCommand) setAddress(address *kernel.Address) error {
	if address != nil {
		if err := address.Validate(); err != nil {
			return err
		}
	}
	c.address = address
	return nil
}
