package queries

import (
	"errors"
	"time"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
	"medledger/internal/pkg/guard"
)

var ErrGetOpenContractsQueryIsNotConstructed = errors.New(
	"GetOpenContractsQuery must be created via NewGetOpenContractsQuery constructor",
)

// GetOpenContractsQuery retrieves every contract still in play: anything not
// yet Completed and not Cancelled. Used for monitoring and for the
// arrival-deadline watchdog.
type GetOpenContractsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenContractsQuery creates a parameterless query for open contracts.
func NewGetOpenContractsQuery() GetOpenContractsQuery {
	return GetOpenContractsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenContractsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenContractsQueryIsNotConstructed)
}

// GetOpenContractsQueryResponse describes one open contract.
type GetOpenContractsQueryResponse struct {
	ID        kernel.UUID
	BuyerID   kernel.UUID
	SellerID  kernel.UUID
	Status    contract.Status
	ArrivalAt time.Time
}
