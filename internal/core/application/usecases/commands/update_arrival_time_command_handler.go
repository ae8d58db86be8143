package commands

import (
	"context"
)

// UpdateArrivalTimeCommandHandler moves a contract's advisory arrival
// deadline.
type UpdateArrivalTimeCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewUpdateArrivalTimeCommandHandler creates a handler for arrival-deadline updates.
func NewUpdateArrivalTimeCommandHandler(uowFactory ContractUoWFactory) UpdateArrivalTimeCommandHandler {
	return UpdateArrivalTimeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit. Both approvals reset on success, regardless of
// their prior value.
func (h UpdateArrivalTimeCommandHandler) Handle(ctx context.Context, cmd UpdateArrivalTimeCommand) error {
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

	if err = aggregate.UpdateArrivalAt(cmd.ArrivalAt()); err != nil {
		return err
	}

	if err = contractRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
