package commands

import (
	"context"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/core/domain/services"
	"medledger/internal/pkg/errs"
)

// CarrierTransitionCommandHandler applies a carriage transition to the named
// shipments of a contract on behalf of a carrier employee.
//
// Authorization is all-or-nothing: the acting employee must work for the
// carrying business of every named shipment, otherwise the whole command
// fails with Unauthorized and nothing is written.
//
// A transition to Accepted moves custody of every item in each accepted
// shipment from the selling business to that shipment's carrier through the
// custody service. The contract, the businesses and all moved items commit
// in one transaction.
type CarrierTransitionCommandHandler struct {
	uowFactory UoWFactory
}

// NewCarrierTransitionCommandHandler creates a handler for carriage transitions.
func NewCarrierTransitionCommandHandler(uowFactory UoWFactory) CarrierTransitionCommandHandler {
	return CarrierTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carriage transition command.
func (h CarrierTransitionCommandHandler) Handle(ctx context.Context, cmd CarrierTransitionCommand) error {
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

	// authorize every index before transitioning any of them
	for _, index := range cmd.ShipmentIndexes() {
		shipment, shipmentErr := aggregate.ShipmentAt(index)
		if shipmentErr != nil {
			return shipmentErr
		}
		if !actor.WorksFor().IsEqual(shipment.Carrier()) {
			return errs.NewUnauthorizedError(actor.ID().String(), shipment.Carrier().String())
		}
	}

	businessRepo := uow.BusinessRepository()
	itemRepo := uow.ItemRepository()
	custody := services.NewCustodyService()

	seller, err := businessRepo.Get(ctx, aggregate.SellerID())
	if err != nil {
		return err
	}

	// carriers seen this command, keyed by business id
	carriers := map[kernel.UUID]*business.Business{}

	for _, index := range cmd.ShipmentIndexes() {
		if err = aggregate.TransitionShipment(index, cmd.Status()); err != nil {
			return err
		}

		if cmd.Status() != contract.ShipmentAccepted {
			continue
		}

		shipment, shipmentErr := aggregate.ShipmentAt(index)
		if shipmentErr != nil {
			return shipmentErr
		}

		carrier, ok := carriers[shipment.Carrier()]
		if !ok {
			if carrier, err = businessRepo.Get(ctx, shipment.Carrier()); err != nil {
				return err
			}
			carriers[shipment.Carrier()] = carrier
		}

		for _, itemID := range shipment.Items() {
			moved, itemErr := itemRepo.Get(ctx, itemID)
			if itemErr != nil {
				return itemErr
			}
			if err = custody.Transfer(moved, seller, carrier, nil); err != nil {
				return err
			}
			if err = itemRepo.Update(ctx, moved); err != nil {
				return err
			}
		}
	}

	if err = businessRepo.Update(ctx, seller); err != nil {
		return err
	}

	for _, carrier := range carriers {
		if err = businessRepo.Update(ctx, carrier); err != nil {
			return err
		}
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
