package queries

import (
	"errors"

	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/errs"
	"medledger/internal/pkg/guard"
)

var ErrGetBusinessInventoryQueryIsNotConstructed = errors.New(
	"GetBusinessInventoryQuery must be created via NewGetBusinessInventoryQuery constructor",
)

// GetBusinessInventoryQuery retrieves every item currently held by one
// business.
//
// Example:
//
//	query, err := NewGetBusinessInventoryQuery(businessID)
//	if err != nil {
//	    return err
//	}
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get inventory: %w", err)
//	}
//
//	for _, held := range items {
//	    fmt.Printf("%s: %d %s\n", held.ID, held.Amount, held.UnitOfMeasure)
//	}
type GetBusinessInventoryQuery struct {
	businessID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBusinessInventoryQuery creates a query for one business's holdings.
func NewGetBusinessInventoryQuery(businessID kernel.UUID) (GetBusinessInventoryQuery, error) {
	if err := businessID.Validate(); err != nil {
		return GetBusinessInventoryQuery{}, errs.NewValueIsRequiredErrorWithCause("businessId", err)
	}
	return GetBusinessInventoryQuery{
		businessID: businessID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessInventoryQueryIsNotConstructed)
}

// BusinessID returns the holding business.
func (q GetBusinessInventoryQuery) BusinessID() kernel.UUID {
	return q.businessID
}

// GetBusinessInventoryQueryResponse describes one held item.
type GetBusinessInventoryQueryResponse struct {
	ID            kernel.UUID
	ItemTypeID    kernel.UUID
	Amount        int
	UnitOfMeasure string
}
