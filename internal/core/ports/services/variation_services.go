package services

import (
	"context"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/dto"
)

// VariationSvcFacade defines the business operations for monthly variations.
type VariationSvcFacade interface {
	// UpsertVariation enforces tuple uniqueness: it replaces any existing
	// variation for the (item, kind, year, month) tuple, and deletes it
	// instead when the submitted amount equals the item's default, keeping
	// "no override" and "override equal to default" one state.
	UpsertVariation(ctx context.Context, fixedItemID string, req dto.UpsertVariationRequest) (*domain.MonthlyVariation, bool, error)
	ListVariations(ctx context.Context, fixedItemID *string) ([]domain.MonthlyVariation, error)
	DeleteVariation(ctx context.Context, variationID string) error
}
