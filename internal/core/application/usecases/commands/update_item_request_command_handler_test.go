package commands_test

import (
	"context"
	"testing"

	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateItemRequestCommand(t *testing.T) {
	t.Run("should fail with negative index", func(t *testing.T) {
		_, err := commands.NewUpdateItemRequestCommand(kernel.NewUUID(), -1, 10)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with non-positive quantity", func(t *testing.T) {
		_, err := commands.NewUpdateItemRequestCommand(kernel.NewUUID(), 0, 0)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestUpdateItemRequestCommandHandler(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, aggregate *contract.Contract, index, quantity int) (
		commands.UpdateItemRequestCommandHandler, commands.UpdateItemRequestCommand,
		*MockUoW, *MockContractRepository,
	) {
		t.Helper()

		contractRepo := &MockContractRepository{}
		contractRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

		uow := &MockUoW{}
		uow.On("Begin", ctx).Return(nil)
		uow.On("ContractRepository").Return(contractRepo)
		uow.On("Rollback", ctx).Return(nil)

		factory := &MockContractUoWFactory{}
		factory.On("Create").Return(uow)

		cmd, err := commands.NewUpdateItemRequestCommand(aggregate.ID(), index, quantity)
		require.NoError(t, err)

		return commands.NewUpdateItemRequestCommandHandler(factory), cmd, uow, contractRepo
	}

	addLine := func(t *testing.T, aggregate *contract.Contract, quantity int) kernel.UUID {
		t.Helper()
		typeID := kernel.NewUUID()
		request, err := contract.NewItemRequest(typeID, quantity)
		require.NoError(t, err)
		require.NoError(t, aggregate.AddItemRequest(request))
		return typeID
	}

	t.Run("should change quantity and reset existing approvals", func(t *testing.T) {
		aggregate := testContractBetween(t, kernel.NewUUID(), kernel.NewUUID())
		typeID := addLine(t, aggregate, 5)
		require.NoError(t, aggregate.Approve(aggregate.SellerID()))
		require.Equal(t, contract.ApprovalConfirmed, aggregate.SellerApproval())

		handler, cmd, uow, contractRepo := setup(t, aggregate, 0, 40)
		contractRepo.On("Update", ctx, aggregate).Return(nil)
		uow.On("Commit", ctx).Return(nil)

		require.NoError(t, handler.Handle(ctx, cmd))

		lines := aggregate.ItemRequests()
		require.Len(t, lines, 1)
		assert.True(t, lines[0].ItemTypeID().IsEqual(typeID))
		assert.Equal(t, 40, lines[0].Quantity())
		assert.Equal(t, contract.ApprovalWaitingConfirmation, aggregate.SellerApproval())
		assert.Equal(t, contract.ApprovalWaitingConfirmation, aggregate.BuyerApproval())
		uow.AssertExpectations(t)
		contractRepo.AssertExpectations(t)
	})

	t.Run("should fail on unknown line index", func(t *testing.T) {
		aggregate := testContractBetween(t, kernel.NewUUID(), kernel.NewUUID())
		addLine(t, aggregate, 5)

		handler, cmd, uow, contractRepo := setup(t, aggregate, 1, 40)

		err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		contractRepo.AssertNotCalled(t, "Update", ctx, aggregate)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should fail on a completed contract", func(t *testing.T) {
		aggregate := testContractBetween(t, kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, aggregate.Approve(aggregate.SellerID()))
		require.NoError(t, aggregate.Approve(aggregate.BuyerID()))
		require.NoError(t, aggregate.Complete())

		handler, cmd, uow, contractRepo := setup(t, aggregate, 0, 40)

		err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		contractRepo.AssertNotCalled(t, "Update", ctx, aggregate)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
