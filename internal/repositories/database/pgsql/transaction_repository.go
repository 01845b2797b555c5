package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, kind, description, amount, date, category_id, installment_current, installment_total, purchase_id, created_at, last_updated_at`

// scanTransaction reads one row, folding the nullable installment columns
// into the Installment pointer.
func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		txn        domain.Transaction
		current    sql.NullInt32
		total      sql.NullInt32
		purchaseID sql.NullString
	)
	err := row.Scan(
		&txn.TransactionID,
		&txn.Kind,
		&txn.Description,
		&txn.Amount,
		&txn.Date,
		&txn.CategoryID,
		&current,
		&total,
		&purchaseID,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	if err != nil {
		return txn, err
	}
	if current.Valid && total.Valid {
		txn.Installment = &domain.InstallmentInfo{
			Current: int(current.Int32),
			Total:   int(total.Int32),
		}
	}
	txn.PurchaseID = purchaseID.String
	return txn, nil
}

// transactionInsertArgs flattens a transaction into the column order of
// transactionColumns, for use by this repository and the purchase one.
func transactionInsertArgs(txn domain.Transaction) []any {
	var (
		current    sql.NullInt32
		total      sql.NullInt32
		purchaseID sql.NullString
	)
	if txn.Installment != nil {
		current = sql.NullInt32{Int32: int32(txn.Installment.Current), Valid: true}
		total = sql.NullInt32{Int32: int32(txn.Installment.Total), Valid: true}
	}
	if txn.PurchaseID != "" {
		purchaseID = sql.NullString{String: txn.PurchaseID, Valid: true}
	}
	return []any{
		txn.TransactionID,
		txn.Kind,
		txn.Description,
		txn.Amount,
		txn.Date,
		txn.CategoryID,
		current,
		total,
		purchaseID,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	if _, err := r.Pool.Exec(ctx, query, transactionInsertArgs(txn)...); err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, mapScanError(err))
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date, created_at;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transactions: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) ListTransactionsBetween(ctx context.Context, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE date >= $1 AND date <= $2
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions between %s and %s: %w",
			from.Format(time.RFC3339), to.Format(time.RFC3339), err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect transactions: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions
		SET kind = $2, description = $3, amount = $4, date = $5, category_id = $6, last_updated_at = $7
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.Kind,
		txn.Description,
		txn.Amount,
		txn.Date,
		txn.CategoryID,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
