package queries

import (
	"context"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenContractsQueryHandler retrieves open contracts from the database.
// Completed and cancelled contracts are filtered out.
type GetOpenContractsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenContractsQueryHandler creates a handler for open-contract queries.
func NewGetOpenContractsQueryHandler(db *gorm.DB) GetOpenContractsQueryHandler {
	return GetOpenContractsQueryHandler{db: db}
}

// Handle returns open contracts sorted by arrival deadline, soonest first.
func (h GetOpenContractsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenContractsQuery,
) ([]GetOpenContractsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	contracts := make([]GetOpenContractsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			seller_id,
			status,
			arrival_at
		FROM contracts
		WHERE status NOT IN (?, ?)
		ORDER BY arrival_at, id
	`, contract.Completed.String(), contract.Cancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var open GetOpenContractsQueryResponse
		var id, buyerID, sellerID uuid.UUID
		var status string

		if err = rows.Scan(&id, &buyerID, &sellerID, &status, &open.ArrivalAt); err != nil {
			return nil, err
		}

		if open.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if open.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
			return nil, err
		}
		if open.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
			return nil, err
		}
		if open.Status, err = contract.StatusFromString(status); err != nil {
			return nil, err
		}

		contracts = append(contracts, open)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return contracts, nil
}
