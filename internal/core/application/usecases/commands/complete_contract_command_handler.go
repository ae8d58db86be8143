package commands

import (
	"context"
)

// CompleteContractCommandHandler closes out a contract. Calling it before
// the completion gate holds (contract Confirmed, both approvals Confirmed,
// every shipment Arrived) fails with InvalidStateTransition rather than
// silently doing nothing, so callers can tell "not ready" from "done".
type CompleteContractCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewCompleteContractCommandHandler creates a handler for contract completion.
func NewCompleteContractCommandHandler(uowFactory ContractUoWFactory) CompleteContractCommandHandler {
	return CompleteContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h CompleteContractCommandHandler) Handle(ctx context.Context, cmd CompleteContractCommand) error {
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

	contractRepo := uow.ContractRepository()

	aggregate, err := contractRepo.Get(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
