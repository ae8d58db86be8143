package itemrepo

import (
	"context"
	"errors"

	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormItemRepository implements ItemRepository using GORM. Items are never
// deleted; the audit trail outlives every contract that moved them.
type GormItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB, tracker aggregateTracker) *GormItemRepository {
	return &GormItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new item with its seeded location log.
func (r *GormItemRepository) Add(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing item. The location log child rows are replaced
// wholesale; the log itself only ever grows, so nothing is lost.
func (r *GormItemRepository) Update(ctx context.Context, aggregate *item.Item) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	if err := tx.Where("item_id = ?", dto.ID).Delete(&ItemLocationDTO{}).Error; err != nil {
		return err
	}

	result := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an item by ID with its location log in recorded order.
func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*item.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Preload("Locations", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormItemTypeRepository implements ItemTypeRepository using GORM.
type GormItemTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormItemTypeRepository creates a new GORM catalog repository.
func NewGormItemTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormItemTypeRepository {
	return &GormItemTypeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog entry.
func (r *GormItemTypeRepository) Add(ctx context.Context, entry *item.ItemType) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := itemTypeFromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Get retrieves a catalog entry by ID.
func (r *GormItemTypeRepository) Get(ctx context.Context, id kernel.UUID) (*item.ItemType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("itemType", id.String())
		}
		return nil, err
	}

	return itemTypeToDomain(dto)
}
