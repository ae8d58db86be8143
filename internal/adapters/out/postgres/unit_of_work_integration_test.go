package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "medledger/internal/adapters/out/postgres"
	"medledger/internal/adapters/out/postgres/businessrepo"
	"medledger/internal/adapters/out/postgres/contractrepo"
	"medledger/internal/adapters/out/postgres/employeerepo"
	"medledger/internal/adapters/out/postgres/itemrepo"
	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/core/domain/services"
	"medledger/internal/core/ports"
	"medledger/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a
// real PostgreSQL instance, including a full custody-transfer round trip.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&businessrepo.BusinessDTO{}, &businessrepo.RosterEntryDTO{}, &businessrepo.InventoryEntryDTO{},
		&employeerepo.EmployeeDTO{},
		&itemrepo.ItemTypeDTO{}, &itemrepo.ItemDTO{}, &itemrepo.ItemLocationDTO{},
		&contractrepo.ContractDTO{}, &contractrepo.ItemRequestDTO{},
		&contractrepo.ShipmentDTO{}, &contractrepo.ShipmentItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		businesses, business_employees, business_inventory,
		employees, item_types, items, item_locations,
		contracts, contract_item_requests, contract_shipments, contract_shipment_items`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.BusinessRepository())
	suite.NotNil(uow1.EmployeeRepository())
	suite.NotNil(uow1.ItemRepository())
	suite.NotNil(uow1.ItemTypeRepository())
	suite.NotNil(uow1.ContractRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBusinessRoundTrip() {
	ctx := context.Background()

	aggregate := suite.newBusiness(business.Manufacturer, "acme-pharma")
	employeeID := kernel.NewUUID()
	suite.Require().NoError(aggregate.AddEmployee(employeeID))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().BusinessRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.Name(), restored.Name())
	suite.Equal(aggregate.Type(), restored.Type())
	suite.Equal([]kernel.UUID{employeeID}, restored.Employees())
	isEqual, err := aggregate.Address().IsEqual(restored.Address())
	suite.Require().NoError(err)
	suite.True(isEqual)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestItemRoundTrip_KeepsLocationLogOrder() {
	ctx := context.Background()

	owner := suite.newBusiness(business.Manufacturer, "acme-pharma")
	carrier := suite.newBusiness(business.Carrier, "swift-logistics")

	aggregate, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), 500, "tablets",
		owner.ID(), owner.Address())
	suite.Require().NoError(err)
	suite.Require().NoError(services.NewCustodyService().Provision(aggregate, owner))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, owner))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, carrier))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	// move custody and persist the grown log
	suite.Require().NoError(services.NewCustodyService().Transfer(aggregate, owner, carrier, nil))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ItemRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.BusinessRepository().Update(ctx, owner))
	suite.Require().NoError(uow.BusinessRepository().Update(ctx, carrier))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().ItemRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(carrier.ID(), restored.Owner())
	suite.Require().Len(restored.Locations(), 2)
	isEqual, err := restored.Locations()[0].IsEqual(owner.Address())
	suite.Require().NoError(err)
	suite.True(isEqual, "first stop should be the provisioning address")
	isEqual, err = restored.CurrentLocation().IsEqual(carrier.Address())
	suite.Require().NoError(err)
	suite.True(isEqual, "last stop should be the carrier address")

	restoredCarrier, err := suite.factory.Create().BusinessRepository().Get(ctx, carrier.ID())
	suite.Require().NoError(err)
	suite.True(restoredCarrier.HasItem(aggregate.ID()))

	restoredOwner, err := suite.factory.Create().BusinessRepository().Get(ctx, owner.ID())
	suite.Require().NoError(err)
	suite.False(restoredOwner.HasItem(aggregate.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestContractRoundTrip() {
	ctx := context.Background()

	aggregate, err := contract.NewContract(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	request, err := contract.NewItemRequest(kernel.NewUUID(), 40)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddItemRequest(request))

	source, err := kernel.NewAddress("1 Plant Way", "Indianapolis", "IN", "USA", "46201")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("9 Depot Rd", "Columbus", "OH", "USA", "43004")
	suite.Require().NoError(err)

	carried := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}
	shipment, err := contract.NewShipment(kernel.NewUUID(), source, destination, carried)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddShipment(shipment))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ContractRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().ContractRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.BuyerID(), restored.BuyerID())
	suite.Equal(aggregate.SellerID(), restored.SellerID())
	suite.Equal(contract.WaitingConfirmation, restored.Status())
	suite.Require().Len(restored.ItemRequests(), 1)
	suite.Equal(request.ItemTypeID(), restored.ItemRequests()[0].ItemTypeID())
	suite.Equal(40, restored.ItemRequests()[0].Quantity())

	restoredShipment, err := restored.ShipmentAt(0)
	suite.Require().NoError(err)
	suite.Equal(contract.ShipmentWaitingConfirmation, restoredShipment.Status())
	suite.Equal(contract.NotArrived, restoredShipment.ReceivingStatus())
	suite.Equal(carried, restoredShipment.Items())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestContractUpdate_ReplacesChildren() {
	ctx := context.Background()

	aggregate, err := contract.NewContract(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	first, err := contract.NewItemRequest(kernel.NewUUID(), 10)
	suite.Require().NoError(err)
	second, err := contract.NewItemRequest(kernel.NewUUID(), 20)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddItemRequest(first))
	suite.Require().NoError(aggregate.AddItemRequest(second))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ContractRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(aggregate.RemoveItemRequests([]int{0}))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ContractRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().ContractRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.ItemRequests(), 1)
	suite.Equal(second.ItemTypeID(), restored.ItemRequests()[0].ItemTypeID())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestContractDelete() {
	ctx := context.Background()

	aggregate, err := contract.NewContract(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ContractRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ContractRepository().Delete(ctx, aggregate.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	_, err = suite.factory.Create().ContractRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	aggregate := suite.newBusiness(business.Distributor, "midwest-meds")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().BusinessRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) newBusiness(businessType business.Type, name string) *business.Business {
	address, err := kernel.NewAddress(name+" HQ", "Indianapolis", "IN", "USA", "46201")
	suite.Require().NoError(err)

	aggregate, err := business.NewBusiness(kernel.NewUUID(), businessType, name,
		"Pat Doe", "pat@"+name+".example", address)
	suite.Require().NoError(err)
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
