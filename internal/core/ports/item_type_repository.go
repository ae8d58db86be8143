package ports

import (
	"context"

	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
)

// ItemTypeRepository defines the persistence contract for the immutable
// item-type catalog.
type ItemTypeRepository interface {
	// Add persists a new catalog entry to storage.
	Add(ctx context.Context, aggregate *item.ItemType) error

	// Get retrieves a catalog entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.ItemType, error)
}
