package dto

import (
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
type CreateCategoryRequest struct {
	Name        string      `json:"name" binding:"required"`
	Kind        domain.Kind `json:"kind" binding:"required,oneof=INCOME EXPENSE"`
	Color       string      `json:"color" binding:"required,hexcolor"`
	Description string      `json:"description"` // Optional
}

// UpdateCategoryRequest defines the data allowed for updating a category.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Color       *string `json:"color" binding:"omitempty,hexcolor"`
	Description *string `json:"description"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string      `json:"categoryID"`
	Name        string      `json:"name"`
	Kind        domain.Kind `json:"kind"`
	Color       string      `json:"color"`
	Description string      `json:"description"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Kind:        c.Kind,
		Color:       c.Color,
		Description: c.Description,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to response DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
