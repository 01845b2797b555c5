package repositories

import (
	"context"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data (variable
// transactions and installment parcels alike).
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsBetween retrieves transactions whose instant falls in
	// [from, to] inclusive.
	ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for variable transactions.
// Parcels are written only through the purchase repository.
type TransactionWriter interface {
	// SaveTransaction persists a new variable transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an existing variable transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a variable transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
