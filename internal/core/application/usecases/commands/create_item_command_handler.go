package commands

import (
	"context"

	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/services"
)

// CreateItemCommandHandler provisions a new item into its owner's inventory.
// The item type must exist in the catalog; the item and the owner's updated
// inventory are persisted in one transaction.
type CreateItemCommandHandler struct {
	uowFactory CustodyUoWFactory
}

// NewCreateItemCommandHandler creates a handler for item provisioning.
func NewCreateItemCommandHandler(uowFactory CustodyUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the provisioning command.
func (h CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
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

	if _, err := uow.ItemTypeRepository().Get(ctx, cmd.ItemTypeID()); err != nil {
		return err
	}

	businessRepo := uow.BusinessRepository()

	owner, err := businessRepo.Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}

	aggregate, err := item.NewItem(cmd.ItemID(), cmd.ItemTypeID(), cmd.Amount(),
		cmd.UnitOfMeasure(), owner.ID(), owner.Address())
	if err != nil {
		return err
	}

	if err = services.NewCustodyService().Provision(aggregate, owner); err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = businessRepo.Update(ctx, owner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
