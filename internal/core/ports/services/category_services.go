package services

import (
	"context"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/dto"
)

// CategorySvcFacade defines the business operations for categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, kind *domain.Kind) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	// DeleteCategory removes the category without cascading: existing
	// references resolve to the Uncategorized placeholder on read.
	DeleteCategory(ctx context.Context, categoryID string) error
}
