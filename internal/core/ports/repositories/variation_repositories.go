package repositories

import (
	"context"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
)

// VariationReader defines read operations for monthly variation data
type VariationReader interface {
	// FindVariationByID retrieves a variation by its unique identifier.
	FindVariationByID(ctx context.Context, variationID string) (*domain.MonthlyVariation, error)

	// FindVariationByTuple retrieves the variation for an exact
	// (fixedItemID, kind, year, month) tuple, if one exists.
	FindVariationByTuple(ctx context.Context, fixedItemID string, kind domain.Kind, year int, month time.Month) (*domain.MonthlyVariation, error)

	// ListVariations retrieves all variations, optionally restricted to one
	// fixed item.
	ListVariations(ctx context.Context, fixedItemID *string) ([]domain.MonthlyVariation, error)
}

// VariationWriter defines write operations for monthly variation data
type VariationWriter interface {
	// SaveVariation persists a new variation. The unique index on
	// (fixed_item_id, kind, year, month) backs the one-per-tuple invariant.
	SaveVariation(ctx context.Context, variation domain.MonthlyVariation) error

	// UpdateVariation updates an existing variation's amount.
	UpdateVariation(ctx context.Context, variation domain.MonthlyVariation) error

	// DeleteVariation removes a variation.
	DeleteVariation(ctx context.Context, variationID string) error
}

// VariationRepositoryFacade combines all variation repository interfaces
type VariationRepositoryFacade interface {
	VariationReader
	VariationWriter
}
