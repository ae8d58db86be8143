package commands

import (
	"context"
)

// RemoveEmployeeFromBusinessCommandHandler removes an employee from a
// business roster and deletes the employee record in one transaction.
type RemoveEmployeeFromBusinessCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRemoveEmployeeFromBusinessCommandHandler creates a handler for unstaffing operations.
func NewRemoveEmployeeFromBusinessCommandHandler(
	uowFactory StaffUoWFactory,
) RemoveEmployeeFromBusinessCommandHandler {
	return RemoveEmployeeFromBusinessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unstaffing command. Fails with ObjectNotFound when
// the employee is not on the roster.
func (h RemoveEmployeeFromBusinessCommandHandler) Handle(
	ctx context.Context, cmd RemoveEmployeeFromBusinessCommand,
) error {
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

	employer, err := businessRepo.Get(ctx, cmd.BusinessID())
	if err != nil {
		return err
	}

	if err = employer.RemoveEmployee(cmd.EmployeeID()); err != nil {
		return err
	}

	if err = uow.EmployeeRepository().Delete(ctx, cmd.EmployeeID()); err != nil {
		return err
	}

	if err = businessRepo.Update(ctx, employer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
