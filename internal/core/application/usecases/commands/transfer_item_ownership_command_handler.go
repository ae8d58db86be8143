package commands

import (
	"context"

	"medledger/internal/core/domain/services"
)

// TransferItemOwnershipCommandHandler executes a manual custody move through
// the custody service, keeping the single-ownership invariant intact.
//
// Example:
//
//	handler := NewTransferItemOwnershipCommandHandler(uowFactory)
//	cmd, _ := NewTransferItemOwnershipCommand(itemID, sellerID, buyerID, nil)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrNotOwner) {
//	    // the source business does not hold the item; nothing was written
//	}
type TransferItemOwnershipCommandHandler struct {
	uowFactory CustodyUoWFactory
}

// NewTransferItemOwnershipCommandHandler creates a handler for manual custody moves.
func NewTransferItemOwnershipCommandHandler(uowFactory CustodyUoWFactory) TransferItemOwnershipCommandHandler {
	return TransferItemOwnershipCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the custody move. The item, both inventories and the
// location log change together or not at all.
func (h TransferItemOwnershipCommandHandler) Handle(ctx context.Context, cmd TransferItemOwnershipCommand) error {
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

	businessRepo := uow.BusinessRepository()
	itemRepo := uow.ItemRepository()

	aggregate, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	from, err := businessRepo.Get(ctx, cmd.FromBusinessID())
	if err != nil {
		return err
	}

	to, err := businessRepo.Get(ctx, cmd.ToBusinessID())
	if err != nil {
		return err
	}

	if err = services.NewCustodyService().Transfer(aggregate, from, to, cmd.NewLocation()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = businessRepo.Update(ctx, from); err != nil {
		return err
	}

	if err = businessRepo.Update(ctx, to); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
