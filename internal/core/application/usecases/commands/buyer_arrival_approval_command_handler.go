package commands

import (
	"context"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/core/domain/services"
	"medledger/internal/pkg/errs"
)

// BuyerArrivalApprovalCommandHandler records shipment arrivals at the buyer.
// Each named shipment is marked Arrived, and custody of every item in it
// moves from its current holder to the buying business, appending the
// shipment's destination address to the item's location log.
//
// The acting employee must work for the buying business. The contract, the
// buyer, every surrendering holder and all moved items commit in one
// transaction.
type BuyerArrivalApprovalCommandHandler struct {
	uowFactory UoWFactory
}

// NewBuyerArrivalApprovalCommandHandler creates a handler for arrival confirmations.
func NewBuyerArrivalApprovalCommandHandler(uowFactory UoWFactory) BuyerArrivalApprovalCommandHandler {
	return BuyerArrivalApprovalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the arrival confirmation command.
func (h BuyerArrivalApprovalCommandHandler) Handle(ctx context.Context, cmd BuyerArrivalApprovalCommand) error {
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

	actor, err := uow.EmployeeRepository().Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	contractRepo := uow.ContractRepository()

	aggregate, err := contractRepo.Get(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	if !actor.WorksFor().IsEqual(aggregate.BuyerID()) {
		return errs.NewUnauthorizedError(actor.ID().String(), aggregate.BuyerID().String())
	}

	businessRepo := uow.BusinessRepository()
	itemRepo := uow.ItemRepository()
	custody := services.NewCustodyService()

	buyer, err := businessRepo.Get(ctx, aggregate.BuyerID())
	if err != nil {
		return err
	}

	// surrendering holders seen this command, keyed by business id
	holders := map[kernel.UUID]*business.Business{}

	for _, index := range cmd.ShipmentIndexes() {
		if err = aggregate.MarkShipmentArrived(index); err != nil {
			return err
		}

		shipment, shipmentErr := aggregate.ShipmentAt(index)
		if shipmentErr != nil {
			return shipmentErr
		}
		destination := shipment.DestinationAddress()

		for _, itemID := range shipment.Items() {
			moved, itemErr := itemRepo.Get(ctx, itemID)
			if itemErr != nil {
				return itemErr
			}

			holder, ok := holders[moved.Owner()]
			if !ok {
				if holder, err = businessRepo.Get(ctx, moved.Owner()); err != nil {
					return err
				}
				holders[moved.Owner()] = holder
			}

			if err = custody.Transfer(moved, holder, buyer, &destination); err != nil {
				return err
			}
			if err = itemRepo.Update(ctx, moved); err != nil {
				return err
			}
		}
	}

	for _, holder := range holders {
		if err = businessRepo.Update(ctx, holder); err != nil {
			return err
		}
	}

	if err = businessRepo.Update(ctx, buyer); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
