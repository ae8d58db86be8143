package commands

import (
	"context"
)

// AddItemRequestsCommandHandler appends requested-item lines to a contract.
type AddItemRequestsCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewAddItemRequestsCommandHandler creates a handler for request-line additions.
func NewAddItemRequestsCommandHandler(uowFactory ContractUoWFactory) AddItemRequestsCommandHandler {
	return AddItemRequestsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. Both approvals reset to waiting as a side
// effect of the term change.
func (h AddItemRequestsCommandHandler) Handle(ctx context.Context, cmd AddItemRequestsCommand) error {
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

	for _, request := range cmd.Requests() {
		if err = aggregate.AddItemRequest(request); err != nil {
			return err
		}
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
