// Package contractrepo persists the Contract aggregate with its item
// requests and shipments. Children are positional entities addressed by
// index in the domain, so every child table carries a sort_order column and
// updates replace children wholesale.
package contractrepo

import (
	"time"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContractDTO represents the database structure for persisting contracts.
type ContractDTO struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	BuyerID        uuid.UUID        `gorm:"type:uuid;not null;index"`
	SellerID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	BuyerApproval  string           `gorm:"type:varchar(32);not null"`
	SellerApproval string           `gorm:"type:varchar(32);not null"`
	Status         string           `gorm:"type:varchar(32);not null;index"`
	ArrivalAt      time.Time        `gorm:"not null"`
	ItemRequests   []ItemRequestDTO `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
	Shipments      []ShipmentDTO    `gorm:"foreignKey:ContractID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "contracts".
func (ContractDTO) TableName() string {
	return "contracts"
}

// ItemRequestDTO is one negotiated line of a contract.
type ItemRequestDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ContractID uuid.UUID `gorm:"type:uuid;not null;index"`
	SortOrder  int       `gorm:"type:int;not null"`
	ItemTypeID uuid.UUID `gorm:"type:uuid;not null"`
	Quantity   int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "contract_item_requests".
func (ItemRequestDTO) TableName() string {
	return "contract_item_requests"
}

// AddressDTO represents an embedded postal address.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255)"`
	State   string `gorm:"type:varchar(255)"`
	Country string `gorm:"type:varchar(255)"`
	ZipCode string `gorm:"type:varchar(32)"`
}

// ShipmentDTO is one planned delivery of a contract.
type ShipmentDTO struct {
	ID                 uint              `gorm:"primaryKey;autoIncrement"`
	ContractID         uuid.UUID         `gorm:"type:uuid;not null;index"`
	SortOrder          int               `gorm:"type:int;not null"`
	Status             string            `gorm:"type:varchar(32);not null"`
	CarrierID          uuid.UUID         `gorm:"type:uuid;not null;index"`
	SourceAddress      AddressDTO        `gorm:"embedded;embeddedPrefix:source_"`
	DestinationAddress AddressDTO        `gorm:"embedded;embeddedPrefix:destination_"`
	ReceivingStatus    string            `gorm:"type:varchar(32);not null"`
	Items              []ShipmentItemDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "contract_shipments".
func (ShipmentDTO) TableName() string {
	return "contract_shipments"
}

// ShipmentItemDTO links a shipment to one carried item.
type ShipmentItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	ShipmentID uint      `gorm:"not null;index"`
	SortOrder  int       `gorm:"type:int;not null"`
	ItemID     uuid.UUID `gorm:"type:uuid;not null"`
}

// TableName overrides GORM's default naming to use "contract_shipment_items".
func (ShipmentItemDTO) TableName() string {
	return "contract_shipment_items"
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		Street:  address.Street(),
		City:    address.City(),
		State:   address.State(),
		Country: address.Country(),
		ZipCode: address.Zip(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Street, dto.City, dto.State, dto.Country, dto.ZipCode)
}

func fromDomain(aggregate *contract.Contract) ContractDTO {
	contractID := aggregate.ID().Bytes()

	requests := make([]ItemRequestDTO, 0, len(aggregate.ItemRequests()))
	for order, request := range aggregate.ItemRequests() {
		requests = append(requests, ItemRequestDTO{
			ContractID: contractID,
			SortOrder:  order,
			ItemTypeID: request.ItemTypeID().Bytes(),
			Quantity:   request.Quantity(),
		})
	}

	shipments := make([]ShipmentDTO, 0, len(aggregate.Shipments()))
	for order, shipment := range aggregate.Shipments() {
		items := make([]ShipmentItemDTO, 0, len(shipment.Items()))
		for itemOrder, itemID := range shipment.Items() {
			items = append(items, ShipmentItemDTO{
				SortOrder: itemOrder,
				ItemID:    itemID.Bytes(),
			})
		}

		shipments = append(shipments, ShipmentDTO{
			ContractID:         contractID,
			SortOrder:          order,
			Status:             shipment.Status().String(),
			CarrierID:          shipment.Carrier().Bytes(),
			SourceAddress:      addressFromDomain(shipment.SourceAddress()),
			DestinationAddress: addressFromDomain(shipment.DestinationAddress()),
			ReceivingStatus:    shipment.ReceivingStatus().String(),
			Items:              items,
		})
	}

	return ContractDTO{
		ID:             contractID,
		BuyerID:        aggregate.BuyerID().Bytes(),
		SellerID:       aggregate.SellerID().Bytes(),
		BuyerApproval:  aggregate.BuyerApproval().String(),
		SellerApproval: aggregate.SellerApproval().String(),
		Status:         aggregate.Status().String(),
		ArrivalAt:      aggregate.ArrivalAt(),
		ItemRequests:   requests,
		Shipments:      shipments,
	}
}

func toDomain(dto ContractDTO) (*contract.Contract, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	buyerApproval, err := contract.ApprovalStatusFromString(dto.BuyerApproval)
	if err != nil {
		return nil, err
	}

	sellerApproval, err := contract.ApprovalStatusFromString(dto.SellerApproval)
	if err != nil {
		return nil, err
	}

	status, err := contract.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	requests := make([]contract.ItemRequest, 0, len(dto.ItemRequests))
	for _, entry := range dto.ItemRequests {
		request, entryErr := itemRequestToDomain(entry)
		if entryErr != nil {
			return nil, entryErr
		}
		requests = append(requests, request)
	}

	shipments := make([]*contract.Shipment, 0, len(dto.Shipments))
	for _, entry := range dto.Shipments {
		shipment, entryErr := shipmentToDomain(entry)
		if entryErr != nil {
			return nil, entryErr
		}
		shipments = append(shipments, shipment)
	}

	return contract.RestoreContract(id, buyerID, sellerID,
		buyerApproval, sellerApproval, status, dto.ArrivalAt,
		requests, shipments)
}

func itemRequestToDomain(dto ItemRequestDTO) (contract.ItemRequest, error) {
	itemTypeID, err := kernel.UUIDFromBytes(dto.ItemTypeID[:])
	if err != nil {
		return contract.ItemRequest{}, err
	}

	return contract.NewItemRequest(itemTypeID, dto.Quantity)
}

func shipmentToDomain(dto ShipmentDTO) (*contract.Shipment, error) {
	status, err := contract.ShipmentStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}

	source, err := addressToDomain(dto.SourceAddress)
	if err != nil {
		return nil, err
	}

	destination, err := addressToDomain(dto.DestinationAddress)
	if err != nil {
		return nil, err
	}

	receivingStatus, err := contract.ReceivingStatusFromString(dto.ReceivingStatus)
	if err != nil {
		return nil, err
	}

	items := make([]kernel.UUID, 0, len(dto.Items))
	for _, entry := range dto.Items {
		itemID, entryErr := kernel.UUIDFromBytes(entry.ItemID[:])
		if entryErr != nil {
			return nil, entryErr
		}
		items = append(items, itemID)
	}

	return contract.RestoreShipment(status, carrierID, source, destination,
		receivingStatus, items)
}
