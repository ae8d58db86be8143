package queries

import (
	"context"

	"medledger/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetItemMovementHistoryQueryHandler reads an item's location log from the
// database in recorded order.
type GetItemMovementHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetItemMovementHistoryQueryHandler creates a handler for movement queries.
func NewGetItemMovementHistoryQueryHandler(db *gorm.DB) GetItemMovementHistoryQueryHandler {
	return GetItemMovementHistoryQueryHandler{db: db}
}

// Handle returns the item's stops oldest first.
func (h GetItemMovementHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetItemMovementHistoryQuery,
) ([]GetItemMovementHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stops := make([]GetItemMovementHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			street,
			city,
			state,
			country,
			zip_code
		FROM item_locations
		WHERE item_id = ?
		ORDER BY sort_order
	`, query.ItemID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var street, city, state, country, zipCode string

		if err = rows.Scan(&street, &city, &state, &country, &zipCode); err != nil {
			return nil, err
		}

		location, addrErr := kernel.NewAddress(street, city, state, country, zipCode)
		if addrErr != nil {
			return nil, addrErr
		}

		stops = append(stops, GetItemMovementHistoryQueryResponse{Location: location})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stops, nil
}
