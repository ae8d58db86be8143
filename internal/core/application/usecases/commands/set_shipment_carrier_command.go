package commands

import (
	"errors"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrSetShipmentCarrierCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrSetShipmentCarrierCommandIsNotConstructed = errors.New(
	"SetShipmentCarrierCommand must be created via NewSetShipmentCarrierCommand constructor",
)

// SetShipmentCarrierCommand represents a request to reroute one shipment to
// a different carrying business, setting its carriage status directly. A
// term edit: it resets both approvals. No custody moves here.
type SetShipmentCarrierCommand struct { //nolint:recvcheck //using for validation
	contractID    kernel.UUID
	shipmentIndex int
	carrierID     kernel.UUID
	status        contract.ShipmentStatus

	guard guard.ConstructorGuard
}

// NewSetShipmentCarrierCommand creates a command to reroute a shipment.
func NewSetShipmentCarrierCommand(
	contractID kernel.UUID,
	shipmentIndex int,
	carrierID kernel.UUID,
	status contract.ShipmentStatus,
) (SetShipmentCarrierCommand, error) {
	cmd := SetShipmentCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setShipmentIndex(shipmentIndex),
		cmd.setCarrierID(carrierID),
		cmd.setStatus(status),
	); err != nil {
		return SetShipmentCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetShipmentCarrierCommand) Validate() error {
	return c.guard.Validate(ErrSetShipmentCarrierCommandIsNotConstructed)
}

// ContractID returns the contract being edited.
func (c SetShipmentCarrierCommand) ContractID() kernel.UUID {
	return c.contractID
}

// ShipmentIndex returns the position of the shipment to reroute.
func (c SetShipmentCarrierCommand) ShipmentIndex() int {
	return c.shipmentIndex
}

// CarrierID returns the new carrying business.
func (c SetShipmentCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Status returns the carriage status to set alongside the reassignment.
func (c SetShipmentCarrierCommand) Status() contract.ShipmentStatus {
	return c.status
}

func (c *SetShipmentCarrierCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *SetShipmentCarrierCommand) setShipmentIndex(shipmentIndex int) error {
	if shipmentIndex < 0 {
		return errs.NewValueIsOutOfRangeError("shipmentIndex", shipmentIndex, 0, int(^uint(0)>>1))
	}
	c.shipmentIndex = shipmentIndex
	return nil
}

func (c *SetShipmentCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("carrierId", err)
	}
	c.carrierID = carrierID
	return nil
}

func (c *SetShipmentCarrierCommand) setStatus(status contract.ShipmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
