package commands

import (
	"errors"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrCreateBusinessCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrCreateBusinessCommandIsNotConstructed = errors.New(
	"CreateBusinessCommand must be created via NewCreateBusinessCommand constructor",
)

// CreateBusinessCommand represents a request to register a new supply-chain
// business with an empty roster and inventory.
type CreateBusinessCommand struct { //nolint:recvcheck //using for validation
	businessID   kernel.UUID
	businessType business.Type
	name         string
	pocName      string
	pocEmail     string
	address      kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateBusinessCommand creates a command to register a new business.
func NewCreateBusinessCommand(
	businessID kernel.UUID,
	businessType business.Type,
	name string,
	pocName string,
	pocEmail string,
	address kernel.Address,
) (CreateBusinessCommand, error) {
	cmd := CreateBusinessCommand{
		name:     name,
		pocName:  pocName,
		pocEmail: pocEmail,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBusinessID(businessID),
		cmd.setBusinessType(businessType),
		cmd.setAddress(address),
	); err != nil {
		return CreateBusinessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBusinessCommand) Validate() error {
	return c.guard.Validate(ErrCreateBusinessCommandIsNotConstructed)
}

// BusinessID returns the unique identifier for the new business.
func (c CreateBusinessCommand) BusinessID() kernel.UUID {
	return c.businessID
}

// BusinessType returns whether the business manufactures, carries or distributes.
func (c CreateBusinessCommand) BusinessType() business.Type {
	return c.businessType
}

// Name returns the business name.
func (c CreateBusinessCommand) Name() string {
	return c.name
}

// PointOfContactName returns the contact person's name.
func (c CreateBusinessCommand) PointOfContactName() string {
	return c.pocName
}

// PointOfContactEmail returns the contact person's email.
func (c CreateBusinessCommand) PointOfContactEmail() string {
	return c.pocEmail
}

// Address returns the business premises address.
func (c CreateBusinessCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateBusinessCommand) setBusinessID(businessID kernel.UUID) error {
	if err := businessID.Validate(); err != nil {
		return err
	}
	c.businessID = businessID
	return nil
}

func (c *CreateBusinessCommand) setBusinessType(businessType business.Type) error {
	if err := businessType.Validate(); err != nil {
		return err
	}
	c.businessType = businessType
	return nil
}

func (c *CreateBusinessCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address", err)
	}
	c.address = address
	return nil
}
