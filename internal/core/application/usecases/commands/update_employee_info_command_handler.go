package commands

import (
	"context"

	"medledger/internal/core/domain/model/employee"
)

// UpdateEmployeeInfoCommandHandler handles employee contact-detail updates.
// When the edited employee is their employer's point of contact, the
// employer's contact name and email follow the edit.
type UpdateEmployeeInfoCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewUpdateEmployeeInfoCommandHandler creates a handler for employee info updates.
func NewUpdateEmployeeInfoCommandHandler(uowFactory StaffUoWFactory) UpdateEmployeeInfoCommandHandler {
	return UpdateEmployeeInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
func (h UpdateEmployeeInfoCommandHandler) Handle(ctx context.Context, cmd UpdateEmployeeInfoCommand) error {
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

	previousFullName := aggregate.FirstName() + " " + aggregate.LastName()
	previousEmail := aggregate.Email()

	aggregate.UpdateInfo(cmd.FirstName(), cmd.LastName(), cmd.Email(), cmd.PhoneNumber())

	if err = employeeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.syncPointOfContact(ctx, uow, aggregate, previousFullName, previousEmail); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// syncPointOfContact carries the edit over to the employer when the edited
// employee is listed as its point of contact, matched by the pre-edit full
// name and email.
func (h UpdateEmployeeInfoCommandHandler) syncPointOfContact(
	ctx context.Context,
	uow StaffUoW,
	aggregate *employee.Employee,
	previousFullName string,
	previousEmail string,
) error {
	businessRepo := uow.BusinessRepository()

	employer, err := businessRepo.Get(ctx, aggregate.WorksFor())
	if err != nil {
		return err
	}

	pocName := ""
	if employer.PointOfContactName() == previousFullName {
		pocName = aggregate.FirstName() + " " + aggregate.LastName()
	}

	pocEmail := ""
	if employer.PointOfContactEmail() == previousEmail {
		pocEmail = aggregate.Email()
	}

	if pocName == "" && pocEmail == "" {
		return nil
	}

	if err = employer.UpdateInfo("", pocName, pocEmail, nil); err != nil {
		return err
	}

	return businessRepo.Update(ctx, employer)
}
