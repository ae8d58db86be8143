package commands_test

import (
	"context"
	"testing"

	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyerArrivalApprovalCommandHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("should move custody from carrier to buyer at the destination", func(t *testing.T) {
		buyer := testBusiness(t, business.Distributor, "midwest-meds")
		carrier := testBusiness(t, business.Carrier, "swift-logistics")
		moved := heldItem(t, carrier)

		aggregate := testContractBetween(t, buyer.ID(), kernel.NewUUID())
		addShipment(t, aggregate, carrier.ID(), moved.ID())

		actor := testEmployee(t, buyer.ID())

		employeeRepo := &MockEmployeeRepository{}
		employeeRepo.On("Get", ctx, actor.ID()).Return(actor, nil)

		contractRepo := &MockContractRepository{}
		contractRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)
		contractRepo.On("Update", ctx, aggregate).Return(nil)

		businessRepo := &MockBusinessRepository{}
		businessRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil)
		businessRepo.On("Get", ctx, carrier.ID()).Return(carrier, nil)
		businessRepo.On("Update", ctx, buyer).Return(nil)
		businessRepo.On("Update", ctx, carrier).Return(nil)

		itemRepo := &MockItemRepository{}
		itemRepo.On("Get", ctx, moved.ID()).Return(moved, nil)
		itemRepo.On("Update", ctx, moved).Return(nil)

		uow := &MockUoW{}
		uow.On("Begin", ctx).Return(nil)
		uow.On("EmployeeRepository").Return(employeeRepo)
		uow.On("ContractRepository").Return(contractRepo)
		uow.On("BusinessRepository").Return(businessRepo)
		uow.On("ItemRepository").Return(itemRepo)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)

		factory := &MockUoWFactory{}
		factory.On("Create").Return(uow)

		cmd, err := commands.NewBuyerArrivalApprovalCommand(aggregate.ID(), []int{0}, actor.ID())
		require.NoError(t, err)

		handler := commands.NewBuyerArrivalApprovalCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		shipment, err := aggregate.ShipmentAt(0)
		require.NoError(t, err)
		assert.Equal(t, contract.Arrived, shipment.ReceivingStatus())
		assert.Equal(t, buyer.ID(), moved.Owner())
		assert.True(t, buyer.HasItem(moved.ID()))
		assert.False(t, carrier.HasItem(moved.ID()))
		assert.Equal(t, shipment.DestinationAddress(), moved.CurrentLocation())
		uow.AssertExpectations(t)
		businessRepo.AssertExpectations(t)
		itemRepo.AssertExpectations(t)
	})

	t.Run("should fail with unauthorized when actor does not work for the buyer", func(t *testing.T) {
		buyer := testBusiness(t, business.Distributor, "midwest-meds")
		carrier := testBusiness(t, business.Carrier, "swift-logistics")
		moved := heldItem(t, carrier)

		aggregate := testContractBetween(t, buyer.ID(), kernel.NewUUID())
		addShipment(t, aggregate, carrier.ID(), moved.ID())

		actor := testEmployee(t, carrier.ID())

		employeeRepo := &MockEmployeeRepository{}
		employeeRepo.On("Get", ctx, actor.ID()).Return(actor, nil)

		contractRepo := &MockContractRepository{}
		contractRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

		uow := &MockUoW{}
		uow.On("Begin", ctx).Return(nil)
		uow.On("EmployeeRepository").Return(employeeRepo)
		uow.On("ContractRepository").Return(contractRepo)
		uow.On("Rollback", ctx).Return(nil)

		factory := &MockUoWFactory{}
		factory.On("Create").Return(uow)

		cmd, err := commands.NewBuyerArrivalApprovalCommand(aggregate.ID(), []int{0}, actor.ID())
		require.NoError(t, err)

		handler := commands.NewBuyerArrivalApprovalCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrUnauthorized)

		shipment, shipmentErr := aggregate.ShipmentAt(0)
		require.NoError(t, shipmentErr)
		assert.Equal(t, contract.NotArrived, shipment.ReceivingStatus())
		assert.Equal(t, carrier.ID(), moved.Owner())
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should fail when the shipment already arrived", func(t *testing.T) {
		buyer := testBusiness(t, business.Distributor, "midwest-meds")
		carrier := testBusiness(t, business.Carrier, "swift-logistics")
		moved := heldItem(t, carrier)

		aggregate := testContractBetween(t, buyer.ID(), kernel.NewUUID())
		addShipment(t, aggregate, carrier.ID(), moved.ID())
		require.NoError(t, aggregate.MarkShipmentArrived(0))

		actor := testEmployee(t, buyer.ID())

		employeeRepo := &MockEmployeeRepository{}
		employeeRepo.On("Get", ctx, actor.ID()).Return(actor, nil)

		contractRepo := &MockContractRepository{}
		contractRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil)

		businessRepo := &MockBusinessRepository{}
		businessRepo.On("Get", ctx, buyer.ID()).Return(buyer, nil)

		itemRepo := &MockItemRepository{}

		uow := &MockUoW{}
		uow.On("Begin", ctx).Return(nil)
		uow.On("EmployeeRepository").Return(employeeRepo)
		uow.On("ContractRepository").Return(contractRepo)
		uow.On("BusinessRepository").Return(businessRepo)
		uow.On("ItemRepository").Return(itemRepo)
		uow.On("Rollback", ctx).Return(nil)

		factory := &MockUoWFactory{}
		factory.On("Create").Return(uow)

		cmd, err := commands.NewBuyerArrivalApprovalCommand(aggregate.ID(), []int{0}, actor.ID())
		require.NoError(t, err)

		handler := commands.NewBuyerArrivalApprovalCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidStateTransition)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
