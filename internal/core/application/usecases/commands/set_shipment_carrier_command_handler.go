package commands

import (
	"context"
)

// SetShipmentCarrierCommandHandler reroutes a shipment to a different
// carrying business.
type SetShipmentCarrierCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewSetShipmentCarrierCommandHandler creates a handler for shipment rerouting.
func NewSetShipmentCarrierCommandHandler(uowFactory ContractUoWFactory) SetShipmentCarrierCommandHandler {
	return SetShipmentCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rerouting. The new carrier must exist; both
// approvals reset on success.
func (h SetShipmentCarrierCommandHandler) Handle(ctx context.Context, cmd SetShipmentCarrierCommand) error {
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

	carrier, err := uow.BusinessRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	contractRepo := uow.ContractRepository()

	aggregate, err := contractRepo.Get(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	if err = aggregate.SetShipmentCarrier(cmd.ShipmentIndex(), carrier.ID(), cmd.Status()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
