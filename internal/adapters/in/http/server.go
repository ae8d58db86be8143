// Package http exposes the contract and custody operations over a JSON API.
// Route handlers translate requests into commands and queries; all business
// rules stay behind the command handlers.
package http

import (
	"errors"
	"net/http"

	"medledger/internal/core/application/usecases/commands"
	"medledger/internal/core/application/usecases/queries"
	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/employee"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every use case the server exposes.
type Handlers struct {
	CreateBusiness     commands.CreateBusinessCommandHandler
	UpdateBusinessInfo commands.UpdateBusinessInfoCommandHandler
	AddEmployee        commands.AddEmployeeToBusinessCommandHandler
	RemoveEmployee     commands.RemoveEmployeeFromBusinessCommandHandler
	UpdateEmployeeInfo commands.UpdateEmployeeInfoCommandHandler
	UpdateEmployeeType commands.UpdateEmployeeTypeCommandHandler

	CreateItemType commands.CreateItemTypeCommandHandler
	CreateItem     commands.CreateItemCommandHandler
	TransferItem   commands.TransferItemOwnershipCommandHandler

	CreateContract     commands.CreateContractCommandHandler
	AddItemRequests    commands.AddItemRequestsCommandHandler
	RemoveItemRequests commands.RemoveItemRequestsCommandHandler
	UpdateItemRequest  commands.UpdateItemRequestCommandHandler
	AddShipment        commands.AddShipmentCommandHandler
	RemoveShipments    commands.RemoveShipmentsCommandHandler
	SetShipmentCarrier commands.SetShipmentCarrierCommandHandler
	UpdateArrivalTime  commands.UpdateArrivalTimeCommandHandler
	ApproveContract    commands.ApproveContractCommandHandler
	CancelContract     commands.CancelContractCommandHandler
	CompleteContract   commands.CompleteContractCommandHandler
	CarrierTransition  commands.CarrierTransitionCommandHandler
	BuyerArrival       commands.BuyerArrivalApprovalCommandHandler

	GetBusinessInventory   queries.GetBusinessInventoryQueryHandler
	GetOpenContracts       queries.GetOpenContractsQueryHandler
	GetItemMovementHistory queries.GetItemMovementHistoryQueryHandler
}

// Server wires the JSON API onto the application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/businesses", s.CreateBusiness)
	api.PUT("/businesses/:businessId", s.UpdateBusinessInfo)
	api.GET("/businesses/:businessId/inventory", s.GetBusinessInventory)
	api.POST("/businesses/:businessId/employees", s.AddEmployee)
	api.DELETE("/businesses/:businessId/employees/:employeeId", s.RemoveEmployee)
	api.PUT("/employees/:employeeId", s.UpdateEmployeeInfo)
	api.PUT("/employees/:employeeId/type", s.UpdateEmployeeType)

	api.POST("/item-types", s.CreateItemType)
	api.POST("/items", s.CreateItem)
	api.POST("/items/:itemId/transfer", s.TransferItem)
	api.GET("/items/:itemId/movements", s.GetItemMovementHistory)

	api.POST("/contracts", s.CreateContract)
	api.GET("/contracts/open", s.GetOpenContracts)
	api.POST("/contracts/:contractId/item-requests", s.AddItemRequests)
	api.DELETE("/contracts/:contractId/item-requests", s.RemoveItemRequests)
	api.PUT("/contracts/:contractId/item-requests/:itemRequestIndex", s.UpdateItemRequest)
	api.POST("/contracts/:contractId/shipments", s.AddShipment)
	api.DELETE("/contracts/:contractId/shipments", s.RemoveShipments)
	api.PUT("/contracts/:contractId/shipments/:shipmentIndex/carrier", s.SetShipmentCarrier)
	api.PUT("/contracts/:contractId/arrival", s.UpdateArrivalTime)
	api.POST("/contracts/:contractId/approve", s.ApproveContract)
	api.POST("/contracts/:contractId/cancel", s.CancelContract)
	api.POST("/contracts/:contractId/complete", s.CompleteContract)
	api.POST("/contracts/:contractId/shipments/transition", s.CarrierTransition)
	api.POST("/contracts/:contractId/shipments/arrival", s.BuyerArrival)
}

// CreateBusiness handles POST /api/v1/businesses.
func (s *Server) CreateBusiness(ctx echo.Context) error {
	var request CreateBusinessRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	businessType, err := business.TypeFromString(request.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := addressFromPayload(request.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	businessID := kernel.NewUUID()
	cmd, err := commands.NewCreateBusinessCommand(businessID, businessType,
		request.Name, request.PointOfContactName, request.PointOfContactEmail, address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateBusiness.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: businessID.String()})
}

// UpdateBusinessInfo handles PUT /api/v1/businesses/:businessId.
func (s *Server) UpdateBusinessInfo(ctx echo.Context) error {
	businessID, err := pathUUID(ctx, "businessId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateBusinessRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var address *kernel.Address
	if request.Address != nil {
		parsed, addrErr := addressFromPayload(*request.Address)
		if addrErr != nil {
			return respondError(ctx, addrErr)
		}
		address = &parsed
	}

	cmd, err := commands.NewUpdateBusinessInfoCommand(businessID, request.Name,
		request.PointOfContactName, request.PointOfContactEmail, address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateBusinessInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetBusinessInventory handles GET /api/v1/businesses/:businessId/inventory.
func (s *Server) GetBusinessInventory(ctx echo.Context) error {
	businessID, err := pathUUID(ctx, "businessId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetBusinessInventoryQuery(businessID)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.handlers.GetBusinessInventory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]InventoryItemResponse, len(items))
	for i, held := range items {
		response[i] = InventoryItemResponse{
			ID:            held.ID.String(),
			ItemTypeID:    held.ItemTypeID.String(),
			Amount:        held.Amount,
			UnitOfMeasure: held.UnitOfMeasure,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddEmployee handles POST /api/v1/businesses/:businessId/employees.
func (s *Server) AddEmployee(ctx echo.Context) error {
	businessID, err := pathUUID(ctx, "businessId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request AddEmployeeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	employeeType, err := employee.TypeFromString(request.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	employeeID := kernel.NewUUID()
	cmd, err := commands.NewAddEmployeeToBusinessCommand(employeeID, businessID,
		request.FirstName, request.LastName, request.Email, request.PhoneNumber, employeeType)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: employeeID.String()})
}

// RemoveEmployee handles DELETE /api/v1/businesses/:businessId/employees/:employeeId.
func (s *Server) RemoveEmployee(ctx echo.Context) error {
	businessID, err := pathUUID(ctx, "businessId")
	if err != nil {
		return respondError(ctx, err)
	}

	employeeID, err := pathUUID(ctx, "employeeId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveEmployeeFromBusinessCommand(businessID, employeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateEmployeeInfo handles PUT /api/v1/employees/:employeeId.
func (s *Server) UpdateEmployeeInfo(ctx echo.Context) error {
	employeeID, err := pathUUID(ctx, "employeeId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateEmployeeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateEmployeeInfoCommand(employeeID,
		request.FirstName, request.LastName, request.Email, request.PhoneNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateEmployeeInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateEmployeeType handles PUT /api/v1/employees/:employeeId/type.
func (s *Server) UpdateEmployeeType(ctx echo.Context) error {
	employeeID, err := pathUUID(ctx, "employeeId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateEmployeeTypeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	employeeType, err := employee.TypeFromString(request.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateEmployeeTypeCommand(employeeID, employeeType)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateEmployeeType.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateItemType handles POST /api/v1/item-types.
func (s *Server) CreateItemType(ctx echo.Context) error {
	var request CreateItemTypeRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemTypeID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemTypeCommand(itemTypeID, request.Name)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateItemType.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: itemTypeID.String()})
}

// CreateItem handles POST /api/v1/items.
func (s *Server) CreateItem(ctx echo.Context) error {
	var request CreateItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemTypeID, err := kernel.UUIDFromString(request.ItemTypeID)
	if err != nil {
		return respondError(ctx, err)
	}

	ownerID, err := kernel.UUIDFromString(request.OwnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	itemID := kernel.NewUUID()
	cmd, err := commands.NewCreateItemCommand(itemID, itemTypeID,
		request.Amount, request.UnitOfMeasure, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: itemID.String()})
}

// TransferItem handles POST /api/v1/items/:itemId/transfer.
func (s *Server) TransferItem(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request TransferItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromID, err := kernel.UUIDFromString(request.FromBusinessID)
	if err != nil {
		return respondError(ctx, err)
	}

	toID, err := kernel.UUIDFromString(request.ToBusinessID)
	if err != nil {
		return respondError(ctx, err)
	}

	var newLocation *kernel.Address
	if request.NewLocation != nil {
		parsed, addrErr := addressFromPayload(*request.NewLocation)
		if addrErr != nil {
			return respondError(ctx, addrErr)
		}
		newLocation = &parsed
	}

	cmd, err := commands.NewTransferItemOwnershipCommand(itemID, fromID, toID, newLocation)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.TransferItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetItemMovementHistory handles GET /api/v1/items/:itemId/movements.
func (s *Server) GetItemMovementHistory(ctx echo.Context) error {
	itemID, err := pathUUID(ctx, "itemId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetItemMovementHistoryQuery(itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	stops, err := s.handlers.GetItemMovementHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]MovementResponse, len(stops))
	for i, stop := range stops {
		response[i] = MovementResponse{Location: AddressPayload{
			Street:  stop.Location.Street(),
			City:    stop.Location.City(),
			State:   stop.Location.State(),
			Country: stop.Location.Country(),
			ZipCode: stop.Location.Zip(),
		}}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateContract handles POST /api/v1/contracts.
func (s *Server) CreateContract(ctx echo.Context) error {
	var request CreateContractRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	buyerID, err := kernel.UUIDFromString(request.BuyerID)
	if err != nil {
		return respondError(ctx, err)
	}

	sellerID, err := kernel.UUIDFromString(request.SellerID)
	if err != nil {
		return respondError(ctx, err)
	}

	contractID := kernel.NewUUID()
	cmd, err := commands.NewCreateContractCommand(contractID, buyerID, sellerID, request.ArrivalAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateContract.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: contractID.String()})
}

// GetOpenContracts handles GET /api/v1/contracts/open.
func (s *Server) GetOpenContracts(ctx echo.Context) error {
	open, err := s.handlers.GetOpenContracts.Handle(ctx.Request().Context(),
		queries.NewGetOpenContractsQuery())
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OpenContractResponse, len(open))
	for i, entry := range open {
		response[i] = OpenContractResponse{
			ID:        entry.ID.String(),
			BuyerID:   entry.BuyerID.String(),
			SellerID:  entry.SellerID.String(),
			Status:    entry.Status.String(),
			ArrivalAt: entry.ArrivalAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddItemRequests handles POST /api/v1/contracts/:contractId/item-requests.
func (s *Server) AddItemRequests(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request AddItemRequestsRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requests := make([]contract.ItemRequest, 0, len(request.Requests))
	for _, payload := range request.Requests {
		itemTypeID, idErr := kernel.UUIDFromString(payload.ItemTypeID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		itemRequest, reqErr := contract.NewItemRequest(itemTypeID, payload.Quantity)
		if reqErr != nil {
			return respondError(ctx, reqErr)
		}
		requests = append(requests, itemRequest)
	}

	cmd, err := commands.NewAddItemRequestsCommand(contractID, requests)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddItemRequests.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveItemRequests handles DELETE /api/v1/contracts/:contractId/item-requests.
func (s *Server) RemoveItemRequests(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request IndexesRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveItemRequestsCommand(contractID, request.Indexes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveItemRequests.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateItemRequest handles PUT /api/v1/contracts/:contractId/item-requests/:itemRequestIndex.
func (s *Server) UpdateItemRequest(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	itemRequestIndex, err := pathInt(ctx, "itemRequestIndex")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateItemRequestRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateItemRequestCommand(contractID, itemRequestIndex, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateItemRequest.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddShipment handles POST /api/v1/contracts/:contractId/shipments.
func (s *Server) AddShipment(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request AddShipmentRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(request.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	source, err := addressFromPayload(request.SourceAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	destination, err := addressFromPayload(request.DestinationAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]kernel.UUID, 0, len(request.Items))
	for _, raw := range request.Items {
		itemID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		items = append(items, itemID)
	}

	cmd, err := commands.NewAddShipmentCommand(contractID, carrierID, source, destination, items)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.AddShipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveShipments handles DELETE /api/v1/contracts/:contractId/shipments.
func (s *Server) RemoveShipments(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request IndexesRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRemoveShipmentsCommand(contractID, request.Indexes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.RemoveShipments.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetShipmentCarrier handles PUT /api/v1/contracts/:contractId/shipments/:shipmentIndex/carrier.
func (s *Server) SetShipmentCarrier(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	shipmentIndex, err := pathInt(ctx, "shipmentIndex")
	if err != nil {
		return respondError(ctx, err)
	}

	var request SetShipmentCarrierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	carrierID, err := kernel.UUIDFromString(request.CarrierID)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := contract.ShipmentStatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetShipmentCarrierCommand(contractID, shipmentIndex, carrierID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SetShipmentCarrier.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateArrivalTime handles PUT /api/v1/contracts/:contractId/arrival.
func (s *Server) UpdateArrivalTime(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateArrivalTimeRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateArrivalTimeCommand(contractID, request.ArrivalAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateArrivalTime.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApproveContract handles POST /api/v1/contracts/:contractId/approve.
func (s *Server) ApproveContract(ctx echo.Context) error {
	contractID, employeeID, err := contractActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewApproveContractCommand(contractID, employeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.ApproveContract.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelContract handles POST /api/v1/contracts/:contractId/cancel.
func (s *Server) CancelContract(ctx echo.Context) error {
	contractID, employeeID, err := contractActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelContractCommand(contractID, employeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CancelContract.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteContract handles POST /api/v1/contracts/:contractId/complete.
func (s *Server) CompleteContract(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteContractCommand(contractID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CompleteContract.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CarrierTransition handles POST /api/v1/contracts/:contractId/shipments/transition.
func (s *Server) CarrierTransition(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ShipmentTransitionRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(request.EmployeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := contract.ShipmentStatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCarrierTransitionCommand(contractID,
		request.ShipmentIndexes, status, employeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CarrierTransition.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BuyerArrival handles POST /api/v1/contracts/:contractId/shipments/arrival.
func (s *Server) BuyerArrival(ctx echo.Context) error {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return respondError(ctx, err)
	}

	var request ShipmentArrivalRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	employeeID, err := kernel.UUIDFromString(request.EmployeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBuyerArrivalApprovalCommand(contractID,
		request.ShipmentIndexes, employeeID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.BuyerArrival.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func contractActor(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	contractID, err := pathUUID(ctx, "contractId")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	var request ActorRequest
	if err = ctx.Bind(&request); err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidError("request body")
	}

	employeeID, err := kernel.UUIDFromString(request.EmployeeID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return contractID, employeeID, nil
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func pathInt(ctx echo.Context, name string) (int, error) {
	var value int
	if err := echo.PathParamsBinder(ctx).Int(name, &value).BindError(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return value, nil
}

func addressFromPayload(payload AddressPayload) (kernel.Address, error) {
	return kernel.NewAddress(payload.Street, payload.City, payload.State,
		payload.Country, payload.ZipCode)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps domain errors onto HTTP statuses: missing objects are
// 404, authorization failures 403, state conflicts 409, bad values 400.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrNotOwner):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidStateTransition), errors.Is(err, errs.ErrConsistencyViolation):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
