package commands

import (
	"context"
)

// UpdateEmployeeTypeCommandHandler handles employee staff-type reassignments.
type UpdateEmployeeTypeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

// NewUpdateEmployeeTypeCommandHandler creates a handler for staff-type reassignments.
func NewUpdateEmployeeTypeCommandHandler(uowFactory EmployeeUoWFactory) UpdateEmployeeTypeCommandHandler {
	return UpdateEmployeeTypeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h UpdateEmployeeTypeCommandHandler) Handle(ctx context.Context, cmd UpdateEmployeeTypeCommand) error {
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

	employeeRepo := uow.EmployeeRepository()

	aggregate, err := employeeRepo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeType(cmd.NewEmployeeType()); err != nil {
		return err
	}

	if err = employeeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
