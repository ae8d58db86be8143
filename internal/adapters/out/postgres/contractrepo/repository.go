package contractrepo

import (
	"context"
	"errors"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContractRepository implements ContractRepository using GORM.
type GormContractRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContractRepository creates a new GORM contract repository.
func NewGormContractRepository(db *gorm.DB, tracker aggregateTracker) *GormContractRepository {
	return &GormContractRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contract to the database.
func (r *GormContractRepository) Add(ctx context.Context, aggregate *contract.Contract) error {
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

// Update saves an existing contract. Item requests and shipments are
// positional, so the child rows are replaced wholesale; shipment item rows
// go with their shipments through the cascade.
func (r *GormContractRepository) Update(ctx context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	if err := tx.Where("contract_id = ?", dto.ID).Delete(&ItemRequestDTO{}).Error; err != nil {
		return err
	}
	if err := tx.Where("contract_id = ?", dto.ID).Delete(&ShipmentDTO{}).Error; err != nil {
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

// Get retrieves a contract by ID with children in persisted order.
func (r *GormContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	err := r.db.WithContext(ctx).
		Preload("ItemRequests", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Shipments", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		Preload("Shipments.Items", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contract", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a contract record, used once both sides have cancelled.
func (r *GormContractRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ContractDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("contract", id.String())
	}

	return nil
}
