package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"medledger/cmd"
	httpadapter "medledger/internal/adapters/in/http"
	"medledger/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateGetOpenContractsQueryHandler(),
		app.CreateCompleteContractCommandHandler(),
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateBusiness:     app.CreateCreateBusinessCommandHandler(),
		UpdateBusinessInfo: app.CreateUpdateBusinessInfoCommandHandler(),
		AddEmployee:        app.CreateAddEmployeeToBusinessCommandHandler(),
		RemoveEmployee:     app.CreateRemoveEmployeeFromBusinessCommandHandler(),
		UpdateEmployeeInfo: app.CreateUpdateEmployeeInfoCommandHandler(),
		UpdateEmployeeType: app.CreateUpdateEmployeeTypeCommandHandler(),

		CreateItemType: app.CreateCreateItemTypeCommandHandler(),
		CreateItem:     app.CreateCreateItemCommandHandler(),
		TransferItem:   app.CreateTransferItemOwnershipCommandHandler(),

		CreateContract:     app.CreateCreateContractCommandHandler(),
		AddItemRequests:    app.CreateAddItemRequestsCommandHandler(),
		RemoveItemRequests: app.CreateRemoveItemRequestsCommandHandler(),
		UpdateItemRequest:  app.CreateUpdateItemRequestCommandHandler(),
		AddShipment:        app.CreateAddShipmentCommandHandler(),
		RemoveShipments:    app.CreateRemoveShipmentsCommandHandler(),
		SetShipmentCarrier: app.CreateSetShipmentCarrierCommandHandler(),
		UpdateArrivalTime:  app.CreateUpdateArrivalTimeCommandHandler(),
		ApproveContract:    app.CreateApproveContractCommandHandler(),
		CancelContract:     app.CreateCancelContractCommandHandler(),
		CompleteContract:   app.CreateCompleteContractCommandHandler(),
		CarrierTransition:  app.CreateCarrierTransitionCommandHandler(),
		BuyerArrival:       app.CreateBuyerArrivalApprovalCommandHandler(),

		GetBusinessInventory:   app.CreateGetBusinessInventoryQueryHandler(),
		GetOpenContracts:       app.CreateGetOpenContractsQueryHandler(),
		GetItemMovementHistory: app.CreateGetItemMovementHistoryQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
