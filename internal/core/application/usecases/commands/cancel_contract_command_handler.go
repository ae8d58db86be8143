package commands

import (
	"context"
)

// CancelContractCommandHandler records a per-side withdrawal. Confirmed and
// completed contracts cannot be cancelled. A contract with one side
// cancelled stays in the store pending the other side; once both sides have
// cancelled the record is deleted in the same transaction.
type CancelContractCommandHandler struct {
	uowFactory ApprovalUoWFactory
}

// NewCancelContractCommandHandler creates a handler for contract cancellations.
func NewCancelContractCommandHandler(uowFactory ApprovalUoWFactory) CancelContractCommandHandler {
	return CancelContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelContractCommandHandler) Handle(ctx context.Context, cmd CancelContractCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	contractRepo := uow.ContractRepository()

	aggregate, err := contractRepo.Get(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	bothCancelled, err := aggregate.Cancel(actor.WorksFor())
	if err != nil {
		return err
	}

	if bothCancelled {
		err = contractRepo.Delete(ctx, aggregate.ID())
	} else {
		err = contractRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
