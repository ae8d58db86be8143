package commands

import (
	"context"
)

// ApproveContractCommandHandler records a per-side confirmation. The acting
// employee's business determines which side confirms; an employee of a
// business that is neither buyer nor seller fails with Unauthorized instead
// of being silently ignored.
//
// When the confirmation lands both sides on Confirmed and every shipment is
// Accepted, the contract reaches Confirmed in the same transaction.
type ApproveContractCommandHandler struct {
	uowFactory ApprovalUoWFactory
}

// NewApproveContractCommandHandler creates a handler for contract approvals.
func NewApproveContractCommandHandler(uowFactory ApprovalUoWFactory) ApproveContractCommandHandler {
	return ApproveContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
func (h ApproveContractCommandHandler) Handle(ctx context.Context, cmd ApproveContractCommand) error {
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

	if err = aggregate.Approve(actor.WorksFor()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
