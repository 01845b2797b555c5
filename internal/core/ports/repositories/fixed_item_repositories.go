package repositories

import (
	"context"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
)

// FixedItemReader defines read operations for fixed item data
type FixedItemReader interface {
	// FindFixedItemByID retrieves a specific fixed item by its unique identifier.
	FindFixedItemByID(ctx context.Context, fixedItemID string) (*domain.FixedItem, error)

	// ListFixedItems retrieves all fixed items, optionally filtered by kind.
	ListFixedItems(ctx context.Context, kind *domain.Kind) ([]domain.FixedItem, error)
}

// FixedItemWriter defines write operations for fixed item data
type FixedItemWriter interface {
	// SaveFixedItem persists a new fixed item.
	SaveFixedItem(ctx context.Context, item domain.FixedItem) error

	// UpdateFixedItem updates an existing fixed item, including the
	// soft-close pattern of setting an end date.
	UpdateFixedItem(ctx context.Context, item domain.FixedItem) error

	// DeleteFixedItem removes a fixed item entirely. Its variations are
	// removed with it; history produced while it was active disappears from
	// synthesized views, which is why the UI prefers soft-closing.
	DeleteFixedItem(ctx context.Context, fixedItemID string) error
}

// FixedItemRepositoryFacade combines all fixed-item repository interfaces
type FixedItemRepositoryFacade interface {
	FixedItemReader
	FixedItemWriter
}
