package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for installment purchases.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, description, total_amount, anchor_date, category_id, count, created_at, last_updated_at`

func scanPurchase(row pgx.Row) (domain.InstallmentPurchase, error) {
	var p domain.InstallmentPurchase
	err := row.Scan(
		&p.PurchaseID,
		&p.Description,
		&p.TotalAmount,
		&p.AnchorDate,
		&p.CategoryID,
		&p.Count,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	return p, err
}

// SavePurchase writes the purchase and every parcel in one transaction. A
// purchase is never visible without its full set of parcels.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.InstallmentPurchase, parcels []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertPurchase := `
		INSERT INTO installment_purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, insertPurchase,
		purchase.PurchaseID,
		purchase.Description,
		purchase.TotalAmount,
		purchase.AnchorDate,
		purchase.CategoryID,
		purchase.Count,
		purchase.CreatedAt,
		purchase.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase %s: %w", purchase.PurchaseID, mapScanError(err))
	}

	insertParcel := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	batch := &pgx.Batch{}
	for _, parcel := range parcels {
		batch.Queue(insertParcel, transactionInsertArgs(parcel)...)
	}
	results := tx.SendBatch(ctx, batch)
	for range parcels {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return fmt.Errorf("failed to save parcels of purchase %s: %w", purchase.PurchaseID, mapScanError(err))
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to save parcels of purchase %s: %w", purchase.PurchaseID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.InstallmentPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM installment_purchases WHERE purchase_id = $1;`
	p, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}
	return &p, nil
}

func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.InstallmentPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM installment_purchases ORDER BY anchor_date, created_at;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.InstallmentPurchase, error) {
		return scanPurchase(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect purchases: %w", err)
	}
	return purchases, nil
}

func (r *PgxPurchaseRepository) ListParcels(ctx context.Context, purchaseID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE purchase_id = $1
		ORDER BY installment_current;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query parcels of purchase %s: %w", purchaseID, err)
	}
	defer rows.Close()

	parcels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect parcels: %w", err)
	}
	return parcels, nil
}

// DeletePurchase removes the purchase and all of its parcels in one
// transaction.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE purchase_id = $1;`, purchaseID); err != nil {
		return fmt.Errorf("failed to delete parcels of purchase %s: %w", purchaseID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM installment_purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}
