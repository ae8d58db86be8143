package commands

import (
	"errors"
	"time"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

// ErrUpdateArrivalTimeCommandIsNotConstructed is returned when the command
// was not built through its constructor.
var ErrUpdateArrivalTimeCommandIsNotConstructed = errors.New(
	"UpdateArrivalTimeCommand must be created via NewUpdateArrivalTimeCommand constructor",
)

// UpdateArrivalTimeCommand represents a request to move a contract's
// advisory arrival deadline. A term edit: it resets both approvals.
type UpdateArrivalTimeCommand struct { //nolint:recvcheck //using for validation
	contractID kernel.UUID
	arrivalAt  time.Time

	guard guard.ConstructorGuard
}

// NewUpdateArrivalTimeCommand creates a command to move the arrival deadline.
func NewUpdateArrivalTimeCommand(contractID kernel.UUID, arrivalAt time.Time) (UpdateArrivalTimeCommand, error) {
	cmd := UpdateArrivalTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContractID(contractID),
		cmd.setArrivalAt(arrivalAt),
	); err != nil {
		return UpdateArrivalTimeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateArrivalTimeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateArrivalTimeCommandIsNotConstructed)
}

// ContractID returns the contract being edited.
func (c UpdateArrivalTimeCommand) ContractID() kernel.UUID {
	return c.contractID
}

// ArrivalAt returns the new arrival deadline.
func (c UpdateArrivalTimeCommand) ArrivalAt() time.Time {
	return c.arrivalAt
}

func (c *UpdateArrivalTimeCommand) setContractID(contractID kernel.UUID) error {
	if err := contractID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("contractId", err)
	}
	c.contractID = contractID
	return nil
}

func (c *UpdateArrivalTimeCommand) setArrivalAt(arrivalAt time.Time) error {
	if arrivalAt.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDateTime")
	}
	c.arrivalAt = arrivalAt
	return nil
}
