package commands

import (
	"context"

	"medledger/internal/core/domain/model/contract"
)

// CreateContractCommandHandler opens a contract between two existing
// businesses.
type CreateContractCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewCreateContractCommandHandler creates a handler for contract creation.
func NewCreateContractCommandHandler(uowFactory ContractUoWFactory) CreateContractCommandHandler {
	return CreateContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contract creation command. Both parties must exist;
// the contract opens with both sides waiting to confirm.
func (h CreateContractCommandHandler) Handle(ctx context.Context, cmd CreateContractCommand) error {
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

	buyer, err := businessRepo.Get(ctx, cmd.BuyerID())
	if err != nil {
		return err
	}

	seller, err := businessRepo.Get(ctx, cmd.SellerID())
	if err != nil {
		return err
	}

	aggregate, err := contract.NewContract(cmd.ContractID(), buyer.ID(), seller.ID(), cmd.ArrivalAt())
	if err != nil {
		return err
	}

	if err = uow.ContractRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
