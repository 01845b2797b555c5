package services

import (
	"context"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/dto"
)

// FixedItemSvcFacade defines the business operations for fixed items.
type FixedItemSvcFacade interface {
	CreateFixedItem(ctx context.Context, req dto.CreateFixedItemRequest) (*domain.FixedItem, error)
	GetFixedItemByID(ctx context.Context, fixedItemID string) (*domain.FixedItem, error)
	ListFixedItems(ctx context.Context, kind *domain.Kind) ([]domain.FixedItem, error)
	UpdateFixedItem(ctx context.Context, fixedItemID string, req dto.UpdateFixedItemRequest) (*domain.FixedItem, error)
	// CloseFixedItem soft-closes the item by setting its end date to today,
	// archiving it without losing the history it generated.
	CloseFixedItem(ctx context.Context, fixedItemID string) (*domain.FixedItem, error)
	// DeleteFixedItem removes the item and its variations entirely.
	DeleteFixedItem(ctx context.Context, fixedItemID string) error
}
