package commands_test

import (
	"context"
	"testing"

	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferItemOwnershipCommandHandler(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, moved *item.Item, from, to *business.Business, newLocation *kernel.Address) (
		commands.TransferItemOwnershipCommandHandler, commands.TransferItemOwnershipCommand,
		*MockUoW, *MockBusinessRepository, *MockItemRepository,
	) {
		t.Helper()

		businessRepo := &MockBusinessRepository{}
		businessRepo.On("Get", ctx, from.ID()).Return(from, nil)
		businessRepo.On("Get", ctx, to.ID()).Return(to, nil)

		itemRepo := &MockItemRepository{}
		itemRepo.On("Get", ctx, moved.ID()).Return(moved, nil)

		uow := &MockUoW{}
		uow.On("Begin", ctx).Return(nil)
		uow.On("BusinessRepository").Return(businessRepo)
		uow.On("ItemRepository").Return(itemRepo)
		uow.On("Rollback", ctx).Return(nil)

		factory := &MockCustodyUoWFactory{}
		factory.On("Create").Return(uow)

		cmd, err := commands.NewTransferItemOwnershipCommand(moved.ID(), from.ID(), to.ID(), newLocation)
		require.NoError(t, err)

		return commands.NewTransferItemOwnershipCommandHandler(factory), cmd, uow, businessRepo, itemRepo
	}

	t.Run("should move the item between inventories", func(t *testing.T) {
		from := testBusiness(t, business.Manufacturer, "acme-pharma")
		to := testBusiness(t, business.Distributor, "midwest-meds")
		moved := heldItem(t, from)

		handler, cmd, uow, businessRepo, itemRepo := setup(t, moved, from, to, nil)
		itemRepo.On("Update", ctx, moved).Return(nil)
		businessRepo.On("Update", ctx, from).Return(nil)
		businessRepo.On("Update", ctx, to).Return(nil)
		uow.On("Commit", ctx).Return(nil)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, to.ID(), moved.Owner())
		assert.True(t, to.HasItem(moved.ID()))
		assert.False(t, from.HasItem(moved.ID()))
		assert.Equal(t, to.Address(), moved.CurrentLocation())
		uow.AssertExpectations(t)
		businessRepo.AssertExpectations(t)
		itemRepo.AssertExpectations(t)
	})

	t.Run("should record an explicit destination when given", func(t *testing.T) {
		from := testBusiness(t, business.Manufacturer, "acme-pharma")
		to := testBusiness(t, business.Distributor, "midwest-meds")
		moved := heldItem(t, from)
		warehouse := testAddress(t, "12 Cold Chain Blvd")

		handler, cmd, uow, businessRepo, itemRepo := setup(t, moved, from, to, &warehouse)
		itemRepo.On("Update", ctx, moved).Return(nil)
		businessRepo.On("Update", ctx, from).Return(nil)
		businessRepo.On("Update", ctx, to).Return(nil)
		uow.On("Commit", ctx).Return(nil)

		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, warehouse, moved.CurrentLocation())
	})

	t.Run("should write nothing when the source does not hold the item", func(t *testing.T) {
		from := testBusiness(t, business.Manufacturer, "acme-pharma")
		to := testBusiness(t, business.Distributor, "midwest-meds")
		holder := testBusiness(t, business.Distributor, "east-coast-rx")
		moved := heldItem(t, holder)

		handler, cmd, uow, businessRepo, itemRepo := setup(t, moved, from, to, nil)

		err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrNotOwner)
		assert.Equal(t, holder.ID(), moved.Owner())
		assert.Len(t, moved.Locations(), 1)
		itemRepo.AssertNotCalled(t, "Update", ctx, moved)
		businessRepo.AssertNotCalled(t, "Update", ctx, from)
		businessRepo.AssertNotCalled(t, "Update", ctx, to)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
