package businessrepo

import (
	"context"
	"errors"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBusinessRepository implements BusinessRepository using GORM.
type GormBusinessRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBusinessRepository creates a new GORM business repository.
func NewGormBusinessRepository(db *gorm.DB, tracker aggregateTracker) *GormBusinessRepository {
	return &GormBusinessRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new business to the database.
func (r *GormBusinessRepository) Add(ctx context.Context, aggregate *business.Business) error {
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

// Update saves an existing business. Roster and inventory child rows are
// replaced wholesale so removals persist too.
func (r *GormBusinessRepository) Update(ctx context.Context, aggregate *business.Business) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	if err := tx.Where("business_id = ?", dto.ID).Delete(&RosterEntryDTO{}).Error; err != nil {
		return err
	}
	if err := tx.Where("business_id = ?", dto.ID).Delete(&InventoryEntryDTO{}).Error; err != nil {
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

// Get retrieves a business by ID with its roster and inventory in order.
func (r *GormBusinessRepository) Get(ctx context.Context, id kernel.UUID) (*business.Business, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BusinessDTO
	err := r.db.WithContext(ctx).
		Preload("Employees", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Inventory", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("business", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
