package ports

import (
	"context"

	"medledger/internal/core/domain/model/item"
	"medledger/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for item aggregates and
// their append-only location logs. Items are never deleted.
type ItemRepository interface {
	// Add persists a new item aggregate to storage.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists changes to an existing item aggregate: its owner
	// reference and any locations appended since it was loaded.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)
}
