package commands

import (
	"context"

	"medledger/internal/core/domain/model/contract"
)

// AddShipmentCommandHandler appends a carriage leg to a contract. The
// carrying business must exist.
type AddShipmentCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewAddShipmentCommandHandler creates a handler for shipment additions.
func NewAddShipmentCommandHandler(uowFactory ContractUoWFactory) AddShipmentCommandHandler {
	return AddShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. Both approvals reset on success.
func (h AddShipmentCommandHandler) Handle(ctx context.Context, cmd AddShipmentCommand) error {
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

	shipment, err := contract.NewShipment(carrier.ID(), cmd.SourceAddress(),
		cmd.DestinationAddress(), cmd.Items())
	if err != nil {
		return err
	}

	if err = aggregate.AddShipment(shipment); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
