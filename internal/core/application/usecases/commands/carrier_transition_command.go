package commands

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrCarrierTransitionCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrCarrierTransitionCommandIsNotConstructed = errors.New(
	"CarrierTransitionCommand must be created via NewCarrierTransitionCommand constructor",
)

// CarrierTransitionCommand represents a carrier-side carriage transition for
// one or more shipments of a contract, acted by a carrier employee.
type CarrierTransitionCommand struct { //nolint:recvcheck //using for validation
	contractID      kernel.UUID
	shipmentIndexes []int
	status          contract.ShipmentStatus
	employeeID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewCarrierTransitionCommand creates a command for a carriage transition.
func NewCarrierTransitionCommand(
	contractID kernel.UUID,
	shipmentIndexes []int,
	status contract.ShipmentStatus,
	employeeID kernel.UUID,
) (CarrierTransitionCommand, error) {
	cmd := CarrierTransitionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setShipmentIndexes(shipmentIndexes),
		cmd.setStatus(status),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return CarrierTransitionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CarrierTransitionCommand) Validate() error {
	return c.guard.Validate(ErrCarrierTransitionCommandIsNotConstructed)
}

// ContractID returns the contract whose shipments transition.
func (c CarrierTransitionCommand) ContractID() kernel.UUID {
	return c.contractID
}

// ShipmentIndexes returns the positions of the shipments to transition.
func (c CarrierTransitionCommand) ShipmentIndexes() []int {
	return slices.Clone(c.shipmentIndexes)
}

// Status returns the carriage status to transition to.
func (c CarrierTransitionCommand) Status() contract.ShipmentStatus {
	return c.status
}

// EmployeeID returns the acting carrier employee.
func (c CarrierTransitionCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *CarrierTransitionCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *CarrierTransitionCommand) setShipmentIndexes(shipmentIndexes []int) error {
	if len(shipmentIndexes) == 0 {
		return errs.NewValueIsRequiredError("shipmentIndexes")
	}
	for _, index := range shipmentIndexes {
		if index < 0 {
			return errs.NewValueIsOutOfRangeError("shipmentIndexes", index, 0, int(^uint(0)>>1))
		}
	}
	c.shipmentIndexes = slices.Clone(shipmentIndexes)
	return nil
}

func (c *CarrierTransitionCommand) setStatus(status contract.ShipmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CarrierTransitionCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	c.employeeID = employeeID
	return nil
}
