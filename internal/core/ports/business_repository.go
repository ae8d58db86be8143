package ports

import (
	"context"

	"medledger/internal/core/domain/model/business"
	"medledger/internal/core/domain/model/kernel"
)

// BusinessRepository defines the persistence contract for business
// aggregates, including their employee roster and inventory.
type BusinessRepository interface {
	// Add persists a new business aggregate to storage.
	Add(ctx context.Context, aggregate *business.Business) error

	// Update persists changes to an existing business aggregate,
	// including roster and inventory membership.
	Update(ctx context.Context, aggregate *business.Business) error

	// Get retrieves a business aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*business.Business, error)
}
