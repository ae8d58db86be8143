package commands

import (
	"context"

	"medledger/internal/core/domain/model/business"
)

// CreateBusinessCommandHandler handles the registration of new businesses.
type CreateBusinessCommandHandler struct {
	uowFactory BusinessUoWFactory
}

// NewCreateBusinessCommandHandler creates a handler for business registration.
func NewCreateBusinessCommandHandler(uowFactory BusinessUoWFactory) CreateBusinessCommandHandler {
	return CreateBusinessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the business registration command.
func (h CreateBusinessCommandHandler) Handle(ctx context.Context, cmd CreateBusinessCommand) error {
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

	aggregate, err := business.NewBusiness(cmd.BusinessID(), cmd.BusinessType(),
		cmd.Name(), cmd.PointOfContactName(), cmd.PointOfContactEmail(), cmd.Address())
	if err != nil {
		return err
	}

	if err = uow.BusinessRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
