package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "medledger/internal/adapters/out/postgres"
	"medledger/internal/adapters/out/postgres/businessrepo"
	"medledger/internal/adapters/out/postgres/contractrepo"
	"medledger/internal/adapters/out/postgres/itemrepo"
	"medledger/internal/core/application/usecases/queries"
	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/core/domain/services"
	"medledger/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL instance populated through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
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
		&itemrepo.ItemTypeDTO{}, &itemrepo.ItemDTO{}, &itemrepo.ItemLocationDTO{},
		&contractrepo.ContractDTO{}, &contractrepo.ItemRequestDTO{},
		&contractrepo.ShipmentDTO{}, &contractrepo.ShipmentItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		businesses, business_employees, business_inventory,
		item_types, items, item_locations,
		contracts, contract_item_requests, contract_shipments, contract_shipment_items`).Error
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetBusinessInventory() {
	ctx := context.Background()

	owner := suite.newBusiness(business.Manufacturer, "acme-pharma")
	other := suite.newBusiness(business.Distributor, "midwest-meds")
	held := suite.newItem(owner, 500, "tablets")
	elsewhere := suite.newItem(other, 30, "vials")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, owner))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, other))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, held))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, elsewhere))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetBusinessInventoryQuery(owner.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetBusinessInventoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 1)
	suite.Equal(held.ID(), result[0].ID)
	suite.Equal(held.ItemTypeID(), result[0].ItemTypeID)
	suite.Equal(500, result[0].Amount)
	suite.Equal("tablets", result[0].UnitOfMeasure)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOpenContracts() {
	ctx := context.Background()

	open := suite.newContract(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))
	later := suite.newContract(time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC))

	completed := suite.newContract(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(completed.Approve(completed.SellerID()))
	suite.Require().NoError(completed.Approve(completed.BuyerID()))
	suite.Require().NoError(completed.Complete())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ContractRepository().Add(ctx, open))
	suite.Require().NoError(uow.ContractRepository().Add(ctx, later))
	suite.Require().NoError(uow.ContractRepository().Add(ctx, completed))
	suite.Require().NoError(uow.Commit(ctx))

	result, err := queries.NewGetOpenContractsQueryHandler(suite.db).
		Handle(ctx, queries.NewGetOpenContractsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	suite.Equal(open.ID(), result[0].ID, "soonest arrival should come first")
	suite.Equal(later.ID(), result[1].ID)
	suite.Equal(contract.WaitingConfirmation, result[0].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetItemMovementHistory() {
	ctx := context.Background()

	owner := suite.newBusiness(business.Manufacturer, "acme-pharma")
	carrier := suite.newBusiness(business.Carrier, "swift-logistics")
	moved := suite.newItem(owner, 500, "tablets")
	suite.Require().NoError(services.NewCustodyService().Transfer(moved, owner, carrier, nil))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, owner))
	suite.Require().NoError(uow.BusinessRepository().Add(ctx, carrier))
	suite.Require().NoError(uow.ItemRepository().Add(ctx, moved))
	suite.Require().NoError(uow.Commit(ctx))

	query, err := queries.NewGetItemMovementHistoryQuery(moved.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetItemMovementHistoryQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	isEqual, err := result[0].Location.IsEqual(owner.Address())
	suite.Require().NoError(err)
	suite.True(isEqual, "first stop should be the provisioning address")
	isEqual, err = result[1].Location.IsEqual(carrier.Address())
	suite.Require().NoError(err)
	suite.True(isEqual, "second stop should be the carrier address")
}

func (suite *QueryHandlersIntegrationTestSuite) newBusiness(businessType business.Type, name string) *business.Business {
	address, err := kernel.NewAddress(name+" HQ", "Indianapolis", "IN", "USA", "46201")
	suite.Require().NoError(err)

	aggregate, err := business.NewBusiness(kernel.NewUUID(), businessType, name,
		"Pat Doe", "pat@"+name+".example", address)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) newItem(owner *business.Business, amount int, uom string) *item.Item {
	aggregate, err := item.NewItem(kernel.NewUUID(), kernel.NewUUID(), amount, uom,
		owner.ID(), owner.Address())
	suite.Require().NoError(err)
	suite.Require().NoError(services.NewCustodyService().Provision(aggregate, owner))
	return aggregate
}

func (suite *QueryHandlersIntegrationTestSuite) newContract(arrivalAt time.Time) *contract.Contract {
	aggregate, err := contract.NewContract(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), arrivalAt)
	suite.Require().NoError(err)
	return aggregate
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
