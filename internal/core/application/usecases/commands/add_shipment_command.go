package commands

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrAddShipmentCommandIsNotConstructed is returned when the command was not
// built through its constructor.
var ErrAddShipmentCommandIsNotConstructed = errors.New(
	"AddShipmentCommand must be created via NewAddShipmentCommand constructor",
)

// AddShipmentCommand represents a request to append a carriage leg to a
// contract: a carrying business, a route and the items to carry. A term
// edit: it resets both approvals.
type AddShipmentCommand struct { //nolint:recvcheck //using for validation
	contractID         kernel.UUID
	carrierID          kernel.UUID
	sourceAddress      kernel.Address
	destinationAddress kernel.Address
	items              []kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddShipmentCommand creates a command to append a shipment.
func NewAddShipmentCommand(
	contractID kernel.UUID,
	carrierID kernel.UUID,
	sourceAddress kernel.Address,
	destinationAddress kernel.Address,
	items []kernel.UUID,
) (AddShipmentCommand, error) {
	cmd := AddShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setCarrierID(carrierID),
		cmd.setAddresses(sourceAddress, destinationAddress),
		cmd.setItems(items),
	); err != nil {
		return AddShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentCommandIsNotConstructed)
}

// ContractID returns the contract being edited.
func (c AddShipmentCommand) ContractID() kernel.UUID {
	return c.contractID
}

// CarrierID returns the carrying business.
func (c AddShipmentCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// SourceAddress returns where the carriage starts.
func (c AddShipmentCommand) SourceAddress() kernel.Address {
	return c.sourceAddress
}

// DestinationAddress returns where the carriage ends.
func (c AddShipmentCommand) DestinationAddress() kernel.Address {
	return c.destinationAddress
}

// Items returns the items to carry, in order.
func (c AddShipmentCommand) Items() []kernel.UUID {
	return slices.Clone(c.items)
}

func (c *AddShipmentCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *AddShipmentCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierId", err)
	}
	c.carrierID = carrierID
	return nil
}

func (c *AddShipmentCommand) setAddresses(source, destination kernel.Address) error {
	if err := errors.Join(source.Validate(), destination.Validate()); err != nil {
		return err
	}
	c.sourceAddress = source
	c.destinationAddress = destination
	return nil
}

func (c *AddShipmentCommand) setItems(items []kernel.UUID) error {
	for _, itemID := range items {
		if err := itemID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("items", err)
		}
	}
	c.items = slices.Clone(items)
	return nil
}
