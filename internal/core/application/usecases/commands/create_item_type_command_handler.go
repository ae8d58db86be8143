package commands

import (
	"context"

	"medledger/internal/core/domain/model/item"
)

// CreateItemTypeCommandHandler handles catalog registrations.
type CreateItemTypeCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateItemTypeCommandHandler creates a handler for catalog registrations.
func NewCreateItemTypeCommandHandler(uowFactory CatalogUoWFactory) CreateItemTypeCommandHandler {
	return CreateItemTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the catalog registration command.
func (h CreateItemTypeCommandHandler) Handle(ctx context.Context, cmd CreateItemTypeCommand) error {
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

	aggregate, err := item.NewItemType(cmd.ItemTypeID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.ItemTypeRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
