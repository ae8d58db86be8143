// Package itemrepo persists the Item aggregate and the ItemType catalog.
// An item's location log lives in a child table ordered by sort_order, so
// the append-only journey survives round trips intact.
package itemrepo

import (
	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting item aggregates.
type ItemDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ItemTypeID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Amount        int               `gorm:"type:int;not null"`
	UnitOfMeasure string            `gorm:"type:varchar(64);not null"`
	CurrentOwner  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Locations     []ItemLocationDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "items".
func (ItemDTO) TableName() string {
	return "items"
}

// ItemLocationDTO is one entry of an item's location log.
type ItemLocationDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index"`
	SortOrder int       `gorm:"type:int;not null"`
	Street    string    `gorm:"type:varchar(255)"`
	City      string    `gorm:"type:varchar(255)"`
	State     string    `gorm:"type:varchar(255)"`
	Country   string    `gorm:"type:varchar(255)"`
	ZipCode   string    `gorm:"type:varchar(32)"`
}

// TableName overrides GORM's default naming to use "item_locations".
func (ItemLocationDTO) TableName() string {
	return "item_locations"
}

// ItemTypeDTO represents a catalog entry.
type ItemTypeDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "item_types".
func (ItemTypeDTO) TableName() string {
	return "item_types"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	itemID := aggregate.ID().Bytes()

	locations := make([]ItemLocationDTO, 0, len(aggregate.Locations()))
	for order, location := range aggregate.Locations() {
		locations = append(locations, ItemLocationDTO{
			ItemID:    itemID,
			SortOrder: order,
			Street:    location.Street(),
			City:      location.City(),
			State:     location.State(),
			Country:   location.Country(),
			ZipCode:   location.Zip(),
		})
	}

	return ItemDTO{
		ID:            itemID,
		ItemTypeID:    aggregate.ItemTypeID().Bytes(),
		Amount:        aggregate.Amount(),
		UnitOfMeasure: aggregate.UnitOfMeasure(),
		CurrentOwner:  aggregate.Owner().Bytes(),
		Locations:     locations,
	}
}

func toDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	itemTypeID, err := kernel.UUIDFromBytes(dto.ItemTypeID[:])
	if err != nil {
		return nil, err
	}

	owner, err := kernel.UUIDFromBytes(dto.CurrentOwner[:])
	if err != nil {
		return nil, err
	}

	locations := make([]kernel.Address, 0, len(dto.Locations))
	for _, entry := range dto.Locations {
		location, locErr := kernel.NewAddress(entry.Street, entry.City,
			entry.State, entry.Country, entry.ZipCode)
		if locErr != nil {
			return nil, locErr
		}
		locations = append(locations, location)
	}

	return item.RestoreItem(id, itemTypeID, dto.Amount, dto.UnitOfMeasure, owner, locations)
}

func itemTypeFromDomain(entry *item.ItemType) ItemTypeDTO {
	return ItemTypeDTO{
		ID:   entry.ID().Bytes(),
		Name: entry.Name(),
	}
}

func itemTypeToDomain(dto ItemTypeDTO) (*item.ItemType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return item.RestoreItemType(id, dto.Name)
}
