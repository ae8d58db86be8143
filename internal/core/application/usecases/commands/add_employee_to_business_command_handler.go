package commands

import (
	"context"

	"medledger/internal/core/domain/model/employee"
)

// AddEmployeeToBusinessCommandHandler creates the employee record and adds
// it to the business roster within one transaction.
type AddEmployeeToBusinessCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewAddEmployeeToBusinessCommandHandler creates a handler for staffing operations.
func NewAddEmployeeToBusinessCommandHandler(uowFactory StaffUoWFactory) AddEmployeeToBusinessCommandHandler {
	return AddEmployeeToBusinessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the staffing command. The employing business must exist;
// the new employee is persisted and the roster updated atomically.
func (h AddEmployeeToBusinessCommandHandler) Handle(ctx context.Context, cmd AddEmployeeToBusinessCommand) error {
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

	aggregate, err := employee.NewEmployee(cmd.EmployeeID(), cmd.FirstName(), cmd.LastName(),
		cmd.Email(), cmd.PhoneNumber(), cmd.EmployeeType(), employer.ID())
	if err != nil {
		return err
	}

	if err = employer.AddEmployee(aggregate.ID()); err != nil {
		return err
	}

	if err = uow.EmployeeRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = businessRepo.Update(ctx, employer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
