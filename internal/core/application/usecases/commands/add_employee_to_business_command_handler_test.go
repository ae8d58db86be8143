package commands_test

import (
	"context"
	"testing"

	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddEmployeeToBusinessCommandHandler(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, employer *business.Business) (
		*MockUoW, *MockBusinessRepository, *MockEmployeeRepository,
		commands.AddEmployeeToBusinessCommandHandler,
	) {
		t.Helper()

		businessRepo := &MockBusinessRepository{}
		businessRepo.On("Get", ctx, employer.ID()).Return(employer, nil)

		employeeRepo := &MockEmployeeRepository{}

		uow := &MockUoW{}
		uow.On("Begin", ctx).Return(nil)
		uow.On("BusinessRepository").Return(businessRepo)
		uow.On("EmployeeRepository").Return(employeeRepo)
		uow.On("Rollback", ctx).Return(nil)

		factory := &MockStaffUoWFactory{}
		factory.On("Create").Return(uow)

		return uow, businessRepo, employeeRepo, commands.NewAddEmployeeToBusinessCommandHandler(factory)
	}

	t.Run("should add the employee to the roster", func(t *testing.T) {
		employer := testBusiness(t, business.Distributor, "midwest-meds")

		uow, businessRepo, employeeRepo, handler := setup(t, employer)
		employeeRepo.On("Add", ctx, mock.AnythingOfType("*employee.Employee")).Return(nil)
		businessRepo.On("Update", ctx, employer).Return(nil)
		uow.On("Commit", ctx).Return(nil)

		employeeID := kernel.NewUUID()
		cmd, err := commands.NewAddEmployeeToBusinessCommand(employeeID, employer.ID(),
			"Sam", "Reyes", "sam.reyes@example.com", "", employee.Regular)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.True(t, employer.HasEmployee(employeeID))
		uow.AssertExpectations(t)
		employeeRepo.AssertExpectations(t)
		businessRepo.AssertExpectations(t)
	})

	t.Run("should fail when the business does not exist", func(t *testing.T) {
		missingID := kernel.NewUUID()

		businessRepo := &MockBusinessRepository{}
		businessRepo.On("Get", ctx, missingID).
			Return(nil, errs.NewObjectNotFoundError("businessId", missingID))

		employeeRepo := &MockEmployeeRepository{}

		uow := &MockUoW{}
		uow.On("Begin", ctx).Return(nil)
		uow.On("BusinessRepository").Return(businessRepo)
		uow.On("Rollback", ctx).Return(nil)

		factory := &MockStaffUoWFactory{}
		factory.On("Create").Return(uow)

		cmd, err := commands.NewAddEmployeeToBusinessCommand(kernel.NewUUID(), missingID,
			"Sam", "Reyes", "sam.reyes@example.com", "", employee.Regular)
		require.NoError(t, err)

		handler := commands.NewAddEmployeeToBusinessCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		employeeRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
