package ports

import (
	"context"

	"medledger/internal/core/domain/model/contract"
	"medledger/internal/core/domain/model/kernel"
)

// ContractRepository defines the persistence contract for contract
// aggregates, including their embedded item requests and shipments.
type ContractRepository interface {
	// Add persists a new contract aggregate to storage.
	Add(ctx context.Context, aggregate *contract.Contract) error

	// Update persists changes to an existing contract aggregate and its
	// embedded lists.
	Update(ctx context.Context, aggregate *contract.Contract) error

	// Get retrieves a contract aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error)

	// Delete removes a contract record. Only called once both parties
	// have recorded a cancellation.
	Delete(ctx context.Context, id kernel.UUID) error
}
