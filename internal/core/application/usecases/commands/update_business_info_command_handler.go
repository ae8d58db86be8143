package commands

import (
	"context"
)

// UpdateBusinessInfoCommandHandler handles business contact-detail updates.
type UpdateBusinessInfoCommandHandler struct {
	uowFactory BusinessUoWFactory
}

// NewUpdateBusinessInfoCommandHandler creates a handler for business info updates.
func NewUpdateBusinessInfoCommandHandler(uowFactory BusinessUoWFactory) UpdateBusinessInfoCommandHandler {
	return UpdateBusinessInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h UpdateBusinessInfoCommandHandler) Handle(ctx context.Context, cmd UpdateBusinessInfoCommand) error {
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

	aggregate, err := businessRepo.Get(ctx, cmd.BusinessID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateInfo(cmd.Name(), cmd.PointOfContactName(),
		cmd.PointOfContactEmail(), cmd.Address()); err != nil {
		return err
	}

	if err = businessRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
