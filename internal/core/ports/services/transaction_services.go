package services

import (
	"context"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	"github.com/fincontrol/fincontrol_app/internal/dto"
)

// TransactionSvcFacade defines the business operations for variable
// transactions. Parcels are readable here but written only through the
// purchase service; deleting a parcel cascades to its whole purchase.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// PurchaseSvcFacade defines the business operations for installment
// purchases, the only creation and deletion entry point for parcels.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, req dto.CreatePurchaseRequest) (*domain.InstallmentPurchase, []domain.Transaction, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, []domain.Transaction, error)
	ListPurchases(ctx context.Context) ([]domain.InstallmentPurchase, error)
	// DeletePurchase removes the purchase and every one of its parcels.
	DeletePurchase(ctx context.Context, purchaseID string) error
}
