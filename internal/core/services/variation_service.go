package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/google/uuid"
)

// variationServiceImpl implements the VariationSvcFacade interface
type variationServiceImpl struct {
	BaseService
	variationRepo portsrepo.VariationRepositoryFacade
	fixedItemRepo portsrepo.FixedItemReader
}

// NewVariationServiceImpl creates a new variation service
func NewVariationServiceImpl(variationRepo portsrepo.VariationRepositoryFacade, fixedItemRepo portsrepo.FixedItemReader) portssvc.VariationSvcFacade {
	return &variationServiceImpl{
		variationRepo: variationRepo,
		fixedItemRepo: fixedItemRepo,
	}
}

// Ensure variationServiceImpl implements the VariationSvcFacade interface
var _ portssvc.VariationSvcFacade = (*variationServiceImpl)(nil)

// UpsertVariation is the single write entry point for overrides and the
// place the one-per-tuple invariant is enforced. The returned bool reports
// whether a variation is stored after the call: false means the collapse
// rule removed it (or never created one) because the submitted amount equals
// the item's default.
func (s *variationServiceImpl) UpsertVariation(ctx context.Context, fixedItemID string, req dto.UpsertVariationRequest) (*domain.MonthlyVariation, bool, error) {
	item, err := s.fixedItemRepo.FindFixedItemByID(ctx, fixedItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fixed item for variation", slog.String("fixed_item_id", fixedItemID))
		}
		return nil, false, err
	}
	if item.Kind != req.Kind {
		err := fmt.Errorf("%w: variation kind %s does not match item kind %s", apperrors.ErrValidation, req.Kind, item.Kind)
		s.LogError(ctx, err, "Variation kind mismatch", slog.String("fixed_item_id", fixedItemID))
		return nil, false, err
	}
	if !req.Amount.IsPositive() {
		err := fmt.Errorf("%w: variation amount must be positive, got %s", apperrors.ErrValidation, req.Amount.String())
		s.LogError(ctx, err, "Variation failed validation", slog.String("fixed_item_id", fixedItemID))
		return nil, false, err
	}

	existing, err := s.variationRepo.FindVariationByTuple(ctx, fixedItemID, req.Kind, req.Year, req.MonthOf())
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up variation tuple", slog.String("fixed_item_id", fixedItemID))
		return nil, false, err
	}

	// Collapse rule: an override equal to the default is the same state as
	// no override, so an existing row is deleted and nothing new is stored.
	if req.Amount.Equal(item.Amount) {
		if existing != nil {
			if err := s.variationRepo.DeleteVariation(ctx, existing.VariationID); err != nil {
				s.LogError(ctx, err, "Failed to collapse variation", slog.String("variation_id", existing.VariationID))
				return nil, false, err
			}
			s.LogInfo(ctx, "Variation collapsed to default",
				slog.String("fixed_item_id", fixedItemID),
				slog.Int("year", req.Year),
				slog.Int("month", req.Month))
		}
		return nil, false, nil
	}

	now := time.Now()
	if existing != nil {
		existing.Amount = req.Amount
		existing.LastUpdatedAt = now
		if err := s.variationRepo.UpdateVariation(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to update variation", slog.String("variation_id", existing.VariationID))
			return nil, false, err
		}
		s.LogInfo(ctx, "Variation updated successfully", slog.String("variation_id", existing.VariationID))
		return existing, true, nil
	}

	variation := domain.MonthlyVariation{
		VariationID: uuid.NewString(),
		FixedItemID: fixedItemID,
		Kind:        req.Kind,
		Year:        req.Year,
		Month:       req.MonthOf(),
		Amount:      req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.variationRepo.SaveVariation(ctx, variation); err != nil {
		s.LogError(ctx, err, "Failed to save variation", slog.String("fixed_item_id", fixedItemID))
		return nil, false, err
	}

	s.LogInfo(ctx, "Variation created successfully",
		slog.String("variation_id", variation.VariationID),
		slog.String("fixed_item_id", fixedItemID),
		slog.Int("year", req.Year),
		slog.Int("month", req.Month))
	return &variation, true, nil
}

func (s *variationServiceImpl) ListVariations(ctx context.Context, fixedItemID *string) ([]domain.MonthlyVariation, error) {
	variations, err := s.variationRepo.ListVariations(ctx, fixedItemID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list variations")
		return nil, err
	}
	if variations == nil {
		return []domain.MonthlyVariation{}, nil
	}
	return variations, nil
}

func (s *variationServiceImpl) DeleteVariation(ctx context.Context, variationID string) error {
	if _, err := s.variationRepo.FindVariationByID(ctx, variationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find variation", slog.String("variation_id", variationID))
		}
		return err
	}

	if err := s.variationRepo.DeleteVariation(ctx, variationID); err != nil {
		s.LogError(ctx, err, "Failed to delete variation", slog.String("variation_id", variationID))
		return err
	}

	s.LogInfo(ctx, "Variation deleted successfully", slog.String("variation_id", variationID))
	return nil
}
