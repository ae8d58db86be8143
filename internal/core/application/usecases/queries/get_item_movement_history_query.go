package queries

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

var ErrGetItemMovementHistoryQueryIsNotConstructed = errors.New(
	"GetItemMovementHistoryQuery must be created via NewGetItemMovementHistoryQuery constructor",
)

// GetItemMovementHistoryQuery retrieves the append-only location log of one
// item, oldest entry first. The last entry is where the item sits now.
type GetItemMovementHistoryQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetItemMovementHistoryQuery creates a query for an item's location log.
func NewGetItemMovementHistoryQuery(itemID kernel.UUID) (GetItemMovementHistoryQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemMovementHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("itemId", err)
	}
	return GetItemMovementHistoryQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetItemMovementHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetItemMovementHistoryQueryIsNotConstructed)
}

// ItemID returns the item whose movements are requested.
func (q GetItemMovementHistoryQuery) ItemID() kernel.UUID {
	return q.itemID
}

// GetItemMovementHistoryQueryResponse is one stop in an item's journey.
type GetItemMovementHistoryQueryResponse struct {
	Location kernel.Address
}
