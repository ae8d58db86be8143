package commands

import (
	"errors"
	"slices"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrBuyerArrivalApprovalCommandIsNotConstructed is returned when the
// command was not built through its constructor.
var ErrBuyerArrivalApprovalCommandIsNotConstructed = errors.New(
	"BuyerArrivalApprovalCommand must be created via NewBuyerArrivalApprovalCommand constructor",
)

// BuyerArrivalApprovalCommand represents the buying side confirming receipt
// of one or more shipments of a contract, acted by a buyer employee.
type BuyerArrivalApprovalCommand struct { //nolint:recvcheck //using for validation
	contractID      kernel.UUID
	shipmentIndexes []int
	employeeID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewBuyerArrivalApprovalCommand creates a command to confirm shipment arrivals.
func NewBuyerArrivalApprovalCommand(
	contractID kernel.UUID,
	shipmentIndexes []int,
	employeeID kernel.UUID,
) (BuyerArrivalApprovalCommand, error) {
	cmd := BuyerArrivalApprovalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setShipmentIndexes(shipmentIndexes),
		cmd.setEmployeeID(employeeID),
	); err != nil {
		return BuyerArrivalApprovalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BuyerArrivalApprovalCommand) Validate() error {
	return c.guard.Validate(ErrBuyerArrivalApprovalCommandIsNotConstructed)
}

// ContractID returns the contract whose shipments arrived.
func (c BuyerArrivalApprovalCommand) ContractID() kernel.UUID {
	return c.contractID
}

// ShipmentIndexes returns the positions of the arrived shipments.
func (c BuyerArrivalApprovalCommand) ShipmentIndexes() []int {
	return slices.Clone(c.shipmentIndexes)
}

// EmployeeID returns the acting buyer employee.
func (c BuyerArrivalApprovalCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

func (c *BuyerArrivalApprovalCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *BuyerArrivalApprovalCommand) setShipmentIndexes(shipmentIndexes []int) error {
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

func (c *BuyerArrivalApprovalCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	c.employeeID = employeeID
	return nil
}
