// Package businessrepo persists the Business aggregate: the company record
// plus its roster and inventory child tables, kept in domain order through a
// sort_order column.
package businessrepo

import (
	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BusinessDTO represents the database structure for persisting business aggregates.
type BusinessDTO struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Type                string              `gorm:"type:varchar(32);not null"`
	Name                string              `gorm:"type:varchar(255);not null"`
	PointOfContactName  string              `gorm:"type:varchar(255);not null"`
	PointOfContactEmail string              `gorm:"type:varchar(255);not null"`
	Address             AddressDTO          `gorm:"embedded;embeddedPrefix:address_"`
	Employees           []RosterEntryDTO    `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
	Inventory           []InventoryEntryDTO `gorm:"foreignKey:BusinessID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "businesses".
func (BusinessDTO) TableName() string {
	return "businesses"
}

// AddressDTO represents an embedded postal address.
type AddressDTO struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(255)"`
	State   string `gorm:"type:varchar(255)"`
	Country string `gorm:"type:varchar(255)"`
	ZipCode string `gorm:"type:varchar(32)"`
}

// RosterEntryDTO links a business to one of its employees.
type RosterEntryDTO struct {
	BusinessID uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SortOrder  int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "business_employees".
func (RosterEntryDTO) TableName() string {
	return "business_employees"
}

// InventoryEntryDTO links a business to an item in its custody.
type InventoryEntryDTO struct {
	BusinessID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	SortOrder  int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "business_inventory".
func (InventoryEntryDTO) TableName() string {
	return "business_inventory"
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

func fromDomain(aggregate *business.Business) BusinessDTO {
	businessID := aggregate.ID().Bytes()

	employees := make([]RosterEntryDTO, 0, len(aggregate.Employees()))
	for order, employeeID := range aggregate.Employees() {
		employees = append(employees, RosterEntryDTO{
			BusinessID: businessID,
			EmployeeID: employeeID.Bytes(),
			SortOrder:  order,
		})
	}

	inventory := make([]InventoryEntryDTO, 0, len(aggregate.Inventory()))
	for order, itemID := range aggregate.Inventory() {
		inventory = append(inventory, InventoryEntryDTO{
			BusinessID: businessID,
			ItemID:     itemID.Bytes(),
			SortOrder:  order,
		})
	}

	return BusinessDTO{
		ID:                  businessID,
		Type:                aggregate.Type().String(),
		Name:                aggregate.Name(),
		PointOfContactName:  aggregate.PointOfContactName(),
		PointOfContactEmail: aggregate.PointOfContactEmail(),
		Address:             addressFromDomain(aggregate.Address()),
		Employees:           employees,
		Inventory:           inventory,
	}
}

func toDomain(dto BusinessDTO) (*business.Business, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	businessType, err := business.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	address, err := addressToDomain(dto.Address)
	if err != nil {
		return nil, err
	}

	employees := make([]kernel.UUID, 0, len(dto.Employees))
	for _, entry := range dto.Employees {
		employeeID, entryErr := kernel.UUIDFromBytes(entry.EmployeeID[:])
		if entryErr != nil {
			return nil, entryErr
		}
		employees = append(employees, employeeID)
	}

	inventory := make([]kernel.UUID, 0, len(dto.Inventory))
	for _, entry := range dto.Inventory {
		itemID, entryErr := kernel.UUIDFromBytes(entry.ItemID[:])
		if entryErr != nil {
			return nil, entryErr
		}
		inventory = append(inventory, itemID)
	}

	return business.RestoreBusiness(id, businessType, dto.Name,
		dto.PointOfContactName, dto.PointOfContactEmail, address,
		employees, inventory)
}
