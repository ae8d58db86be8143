package commands

import (
	"context"
)

// RemoveShipmentsCommandHandler removes carriage legs from a contract by
// position.
type RemoveShipmentsCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewRemoveShipmentsCommandHandler creates a handler for shipment removals.
func NewRemoveShipmentsCommandHandler(uowFactory ContractUoWFactory) RemoveShipmentsCommandHandler {
	return RemoveShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. Out-of-range positions fail with ObjectNotFound
// before anything is removed; both approvals reset on success.
func (h RemoveShipmentsCommandHandler) Handle(ctx context.Context, cmd RemoveShipmentsCommand) error {
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

	if err = aggregate.RemoveShipments(cmd.Indexes()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
