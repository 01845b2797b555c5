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
	"github.com/fincontrol/fincontrol_app/internal/core/schedule"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/google/uuid"
)

// fixedItemServiceImpl implements the FixedItemSvcFacade interface
type fixedItemServiceImpl struct {
	BaseService
	fixedItemRepo portsrepo.FixedItemRepositoryFacade
	location      *time.Location
}

// FixedItemOption is a functional option for configuring the fixed item service
type FixedItemOption func(*fixedItemServiceImpl)

// WithFixedItemLocation sets the zone local calendar dates are parsed in
func WithFixedItemLocation(loc *time.Location) FixedItemOption {
	return func(s *fixedItemServiceImpl) {
		s.location = loc
	}
}

// NewFixedItemServiceImpl creates a new fixed item service with the provided options
func NewFixedItemServiceImpl(repo portsrepo.FixedItemRepositoryFacade, options ...FixedItemOption) portssvc.FixedItemSvcFacade {
	svc := &fixedItemServiceImpl{
		fixedItemRepo: repo,
		location:      time.Local,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure fixedItemServiceImpl implements the FixedItemSvcFacade interface
var _ portssvc.FixedItemSvcFacade = (*fixedItemServiceImpl)(nil)

// validateFixedItem enforces the construction-boundary invariants: positive
// amount, day within 1..31, end date not before start date.
func validateFixedItem(item domain.FixedItem) error {
	if !item.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", apperrors.ErrValidation, item.Kind)
	}
	if !item.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, item.Amount.String())
	}
	if item.DayOfMonth < 1 || item.DayOfMonth > 31 {
		return fmt.Errorf("%w: day of month must be within 1..31, got %d", apperrors.ErrValidation, item.DayOfMonth)
	}
	if item.EndDate != nil && item.EndDate.Before(item.StartDate) {
		return fmt.Errorf("%w: end date %s is before start date %s", apperrors.ErrValidation,
			item.EndDate.Format("2006-01-02"), item.StartDate.Format("2006-01-02"))
	}
	return nil
}

func (s *fixedItemServiceImpl) parseDate(value string) (time.Time, error) {
	date, err := schedule.ParseLocalDate(value, s.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return schedule.ToPersistInstant(date), nil
}

func (s *fixedItemServiceImpl) CreateFixedItem(ctx context.Context, req dto.CreateFixedItemRequest) (*domain.FixedItem, error) {
	startDate, err := s.parseDate(req.StartDate)
	if err != nil {
		s.LogError(ctx, err, "Invalid start date for fixed item", slog.String("start_date", req.StartDate))
		return nil, err
	}

	now := time.Now()
	item := domain.FixedItem{
		FixedItemID: uuid.NewString(),
		Kind:        req.Kind,
		Description: req.Description,
		Amount:      req.Amount,
		DayOfMonth:  req.DayOfMonth,
		StartDate:   startDate,
		CategoryID:  req.CategoryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.EndDate != nil {
		endDate, err := s.parseDate(*req.EndDate)
		if err != nil {
			s.LogError(ctx, err, "Invalid end date for fixed item", slog.String("end_date", *req.EndDate))
			return nil, err
		}
		item.EndDate = &endDate
	}

	if err := validateFixedItem(item); err != nil {
		s.LogError(ctx, err, "Fixed item failed validation")
		return nil, err
	}

	if err := s.fixedItemRepo.SaveFixedItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save fixed item", slog.String("fixed_item_id", item.FixedItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed item created successfully",
		slog.String("fixed_item_id", item.FixedItemID),
		slog.String("kind", string(item.Kind)),
		slog.Int("day_of_month", item.DayOfMonth))
	return &item, nil
}

func (s *fixedItemServiceImpl) GetFixedItemByID(ctx context.Context, fixedItemID string) (*domain.FixedItem, error) {
	item, err := s.fixedItemRepo.FindFixedItemByID(ctx, fixedItemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find fixed item by ID", slog.String("fixed_item_id", fixedItemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *fixedItemServiceImpl) ListFixedItems(ctx context.Context, kind *domain.Kind) ([]domain.FixedItem, error) {
	items, err := s.fixedItemRepo.ListFixedItems(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed items")
		return nil, err
	}
	if items == nil {
		return []domain.FixedItem{}, nil
	}
	return items, nil
}

func (s *fixedItemServiceImpl) UpdateFixedItem(ctx context.Context, fixedItemID string, req dto.UpdateFixedItemRequest) (*domain.FixedItem, error) {
	item, err := s.GetFixedItemByID(ctx, fixedItemID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Description != nil {
		item.Description = *req.Description
		updated = true
	}
	if req.Amount != nil {
		item.Amount = *req.Amount
		updated = true
	}
	if req.DayOfMonth != nil {
		item.DayOfMonth = *req.DayOfMonth
		updated = true
	}
	if req.CategoryID != nil {
		item.CategoryID = *req.CategoryID
		updated = true
	}
	if req.StartDate != nil {
		startDate, err := s.parseDate(*req.StartDate)
		if err != nil {
			return nil, err
		}
		item.StartDate = startDate
		updated = true
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			// Reopen: clear the end date.
			item.EndDate = nil
		} else {
			endDate, err := s.parseDate(*req.EndDate)
			if err != nil {
				return nil, err
			}
			item.EndDate = &endDate
		}
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for fixed item update", slog.String("fixed_item_id", fixedItemID))
		return item, nil
	}

	if err := validateFixedItem(*item); err != nil {
		s.LogError(ctx, err, "Fixed item update failed validation", slog.String("fixed_item_id", fixedItemID))
		return nil, err
	}

	item.LastUpdatedAt = time.Now()
	if err := s.fixedItemRepo.UpdateFixedItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update fixed item", slog.String("fixed_item_id", fixedItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed item updated successfully", slog.String("fixed_item_id", fixedItemID))
	return item, nil
}

func (s *fixedItemServiceImpl) CloseFixedItem(ctx context.Context, fixedItemID string) (*domain.FixedItem, error) {
	item, err := s.GetFixedItemByID(ctx, fixedItemID)
	if err != nil {
		return nil, err
	}

	// Soft close: the item stays in place with today as its last active day,
	// so every month it already generated keeps its history.
	today := schedule.ToPersistInstant(time.Now().In(s.location))
	if today.Before(item.StartDate) {
		err := fmt.Errorf("%w: cannot close an item before its start date", apperrors.ErrValidation)
		s.LogError(ctx, err, "Refusing to close fixed item", slog.String("fixed_item_id", fixedItemID))
		return nil, err
	}
	item.EndDate = &today
	item.LastUpdatedAt = time.Now()

	if err := s.fixedItemRepo.UpdateFixedItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to close fixed item", slog.String("fixed_item_id", fixedItemID))
		return nil, err
	}

	s.LogInfo(ctx, "Fixed item closed successfully", slog.String("fixed_item_id", fixedItemID))
	return item, nil
}

func (s *fixedItemServiceImpl) DeleteFixedItem(ctx context.Context, fixedItemID string) error {
	if _, err := s.GetFixedItemByID(ctx, fixedItemID); err != nil {
		return err
	}

	if err := s.fixedItemRepo.DeleteFixedItem(ctx, fixedItemID); err != nil {
		s.LogError(ctx, err, "Failed to delete fixed item", slog.String("fixed_item_id", fixedItemID))
		return err
	}

	s.LogInfo(ctx, "Fixed item deleted successfully", slog.String("fixed_item_id", fixedItemID))
	return nil
}
