package repositories

import (
	"context"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
)

// PurchaseReader defines read operations for installment purchases.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase by its unique identifier.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, error)

	// ListPurchases retrieves all installment purchases.
	ListPurchases(ctx context.Context) ([]domain.InstallmentPurchase, error)

	// ListParcels retrieves the parcels of a purchase in installment order.
	ListParcels(ctx context.Context, purchaseID string) ([]domain.Transaction, error)
}

// PurchaseWriter defines write operations for installment purchases. The
// purchase is the aggregate root: it and its parcels are always written and
// deleted together, inside one database transaction.
type PurchaseWriter interface {
	// SavePurchase persists a purchase together with all of its parcels.
	SavePurchase(ctx context.Context, purchase domain.InstallmentPurchase, parcels []domain.Transaction) error

	// DeletePurchase removes a purchase and every parcel that belongs to it.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all purchase repository interfaces
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
