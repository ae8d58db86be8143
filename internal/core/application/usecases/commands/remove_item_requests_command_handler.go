package commands

import (
	"context"
)

// RemoveItemRequestsCommandHandler removes requested-item lines from a
// contract by position.
type RemoveItemRequestsCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewRemoveItemRequestsCommandHandler creates a handler for request-line removals.
func NewRemoveItemRequestsCommandHandler(uowFactory ContractUoWFactory) RemoveItemRequestsCommandHandler {
	return RemoveItemRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. Out-of-range positions fail with ObjectNotFound
// before anything is removed; both approvals reset on success.
func (h RemoveItemRequestsCommandHandler) Handle(ctx context.Context, cmd RemoveItemRequestsCommand) error {
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

	if err = aggregate.RemoveItemRequests(cmd.Indexes()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
