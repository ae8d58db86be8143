package http

import "time"

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse returns the server-generated identifier of a created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// AddressPayload carries a postal address. State is optional.
type AddressPayload struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state,omitempty"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

type CreateBusinessRequest struct {
	Type                string         `json:"type"`
	Name                string         `json:"name"`
	PointOfContactName  string         `json:"pointOfContactName"`
	PointOfContactEmail string         `json:"pointOfContactEmail"`
	Address             AddressPayload `json:"address"`
}

// UpdateBusinessRequest carries changed fields only; empty strings and a
// nil address leave the current values untouched.
type UpdateBusinessRequest struct {
	Name                string          `json:"name,omitempty"`
	PointOfContactName  string          `json:"pointOfContactName,omitempty"`
	PointOfContactEmail string          `json:"pointOfContactEmail,omitempty"`
	Address             *AddressPayload `json:"address,omitempty"`
}

type AddEmployeeRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Type        string `json:"type"`
}

type UpdateEmployeeRequest struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type UpdateEmployeeTypeRequest struct {
	Type string `json:"type"`
}

type CreateItemTypeRequest struct {
	Name string `json:"name"`
}

type CreateItemRequest struct {
	ItemTypeID    string `json:"itemTypeId"`
	Amount        int    `json:"amount"`
	UnitOfMeasure string `json:"unitOfMeasure"`
	OwnerID       string `json:"ownerId"`
}

type TransferItemRequest struct {
	FromBusinessID string          `json:"fromBusinessId"`
	ToBusinessID   string          `json:"toBusinessId"`
	NewLocation    *AddressPayload `json:"newLocation,omitempty"`
}

type CreateContractRequest struct {
	BuyerID   string    `json:"buyerId"`
	SellerID  string    `json:"sellerId"`
	ArrivalAt time.Time `json:"arrivalAt"`
}

type ItemRequestPayload struct {
	ItemTypeID string `json:"itemTypeId"`
	Quantity   int    `json:"quantity"`
}

type AddItemRequestsRequest struct {
	Requests []ItemRequestPayload `json:"requests"`
}

type UpdateItemRequestRequest struct {
	Quantity int `json:"quantity"`
}

// IndexesRequest names child positions of a contract, zero-based.
type IndexesRequest struct {
	Indexes []int `json:"indexes"`
}

type AddShipmentRequest struct {
	CarrierID          string         `json:"carrierId"`
	SourceAddress      AddressPayload `json:"sourceAddress"`
	DestinationAddress AddressPayload `json:"destinationAddress"`
	Items              []string       `json:"items"`
}

type SetShipmentCarrierRequest struct {
	CarrierID string `json:"carrierId"`
	Status    string `json:"status"`
}

type UpdateArrivalTimeRequest struct {
	ArrivalAt time.Time `json:"arrivalAt"`
}

// ActorRequest identifies the employee performing a contract decision.
type ActorRequest struct {
	EmployeeID string `json:"employeeId"`
}

type ShipmentTransitionRequest struct {
	EmployeeID      string `json:"employeeId"`
	ShipmentIndexes []int  `json:"shipmentIndexes"`
	Status          string `json:"status"`
}

type ShipmentArrivalRequest struct {
	EmployeeID      string `json:"employeeId"`
	ShipmentIndexes []int  `json:"shipmentIndexes"`
}

type InventoryItemResponse struct {
	ID            string `json:"id"`
	ItemTypeID    string `json:"itemTypeId"`
	Amount        int    `json:"amount"`
	UnitOfMeasure string `json:"unitOfMeasure"`
}

type OpenContractResponse struct {
	ID        string    `json:"id"`
	BuyerID   string    `json:"buyerId"`
	SellerID  string    `json:"sellerId"`
	Status    string    `json:"status"`
	ArrivalAt time.Time `json:"arrivalAt"`
}

type MovementResponse struct {
	Location AddressPayload `json:"location"`
}
