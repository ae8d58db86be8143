package commands

import (
	"errors"
	"time"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrCreateContractCommandIsNotConstructed is returned when the command was
// not built through its constructor.
var ErrCreateContractCommandIsNotConstructed = errors.New(
	"CreateContractCommand must be created via NewCreateContractCommand constructor",
)

// CreateContractCommand represents a request by a negotiating buyer/seller
// pair to open a contract, with both sides waiting to confirm.
type CreateContractCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	buyerID    kernel.UUID
	sellerID   kernel.UUID
	arrivalAt  time.Time

	guard guard.ConstructorGuard
}

// NewCreateContractCommand creates a command to open a contract.
func NewCreateContractCommand(
	contractID kernel.UUID,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	arrivalAt time.Time,
) (CreateContractCommand, error) {
	cmd := CreateContractCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setParties(buyerID, sellerID),
		cmd.setArrivalAt(arrivalAt),
	); err != nil {
		return CreateContractCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateContractCommand) Validate() error {
	return c.guard.Validate(ErrCreateContractCommandIsNotConstructed)
}

// ContractID returns the unique identifier for the new contract.
func (c CreateContractCommand) ContractID() kernel.UUID {
	return c.contractID
}

// BuyerID returns the buying business.
func (c CreateContractCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// SellerID returns the selling business.
func (c CreateContractCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// ArrivalAt returns the advisory arrival deadline.
func (c CreateContractCommand) ArrivalAt() time.Time {
	return c.arrivalAt
}

func (c *CreateContractCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return err
	}
	c.contractID = contractID
	return nil
}

func (c *CreateContractCommand) setParties(buyerID, sellerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerId", err)
	}
	if err := sellerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerId", err)
	}
	c.buyerID = buyerID
	c.sellerID = sellerID
	return nil
}

func (c *CreateContractCommand) setArrivalAt(arrivalAt time.Time) error {
	if arrivalAt.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDateTime")
	}
	c.arrivalAt = arrivalAt
	return nil
}
