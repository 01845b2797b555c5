package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	portssvc "github.com/fincontrol/fincontrol_app/internal/core/ports/services"
	"github.com/fincontrol/fincontrol_app/internal/dto"
	"github.com/google/uuid"
)

// categoryServiceImpl implements the CategorySvcFacade interface
type categoryServiceImpl struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryServiceImpl creates a new category service
func NewCategoryServiceImpl(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryServiceImpl{categoryRepo: repo}
}

// Ensure categoryServiceImpl implements the CategorySvcFacade interface
var _ portssvc.CategorySvcFacade = (*categoryServiceImpl)(nil)

func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Kind:        req.Kind,
		Color:       req.Color,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.CategoryID),
		slog.String("name", category.Name))
	return &category, nil
}

func (s *categoryServiceImpl) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category by ID", slog.String("category_id", categoryID))
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context, kind *domain.Kind) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryServiceImpl) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		category.Name = *req.Name
		updated = true
	}
	if req.Color != nil {
		category.Color = *req.Color
		updated = true
	}
	if req.Description != nil {
		category.Description = *req.Description
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for category update", slog.String("category_id", categoryID))
		return category, nil
	}

	category.LastUpdatedAt = time.Now()
	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated successfully", slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, categoryID); err != nil {
		return err
	}

	// No cascade: transactions and fixed items keep their category id and
	// resolve to the Uncategorized placeholder from now on.
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}

	s.LogInfo(ctx, "Category deleted successfully", slog.String("category_id", categoryID))
	return nil
}
