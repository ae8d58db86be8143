package commands

import (
	"context"
)

// UpdateItemRequestCommandHandler handles requested-item quantity edits.
type UpdateItemRequestCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewUpdateItemRequestCommandHandler creates a handler for quantity edits.
func NewUpdateItemRequestCommandHandler(uowFactory ContractUoWFactory) UpdateItemRequestCommandHandler {
	return UpdateItemRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h UpdateItemRequestCommandHandler) Handle(ctx context.Context, cmd UpdateItemRequestCommand) error {
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

	if err = aggregate.UpdateItemRequest(cmd.ItemRequestIndex(), cmd.NewQuantity()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
