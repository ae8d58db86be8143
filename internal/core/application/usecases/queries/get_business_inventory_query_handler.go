package queries

import (
	"context"

	"medledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBusinessInventoryQueryHandler reads a business's holdings straight from
// the database, bypassing the aggregates.
type GetBusinessInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetBusinessInventoryQueryHandler creates a handler for inventory queries.
func NewGetBusinessInventoryQueryHandler(db *gorm.DB) GetBusinessInventoryQueryHandler {
	return GetBusinessInventoryQueryHandler{db: db}
}

// Handle returns the items in the business's custody, sorted by item id.
func (h GetBusinessInventoryQueryHandler) Handle(
	ctx context.Context,
	query GetBusinessInventoryQuery,
) ([]GetBusinessInventoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := make([]GetBusinessInventoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_type_id,
			amount,
			unit_of_measure
		FROM items
		WHERE current_owner = ?
		ORDER BY id
	`, query.BusinessID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var held GetBusinessInventoryQueryResponse
		var id, itemTypeID uuid.UUID

		if err = rows.Scan(&id, &itemTypeID, &held.Amount, &held.UnitOfMeasure); err != nil {
			return nil, err
		}

		if held.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if held.ItemTypeID, err = kernel.UUIDFromBytes(itemTypeID[:]); err != nil {
			return nil, err
		}

		items = append(items, held)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
