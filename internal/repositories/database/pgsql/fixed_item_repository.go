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

type PgxFixedItemRepository struct {
	BaseRepository
}

// newPgxFixedItemRepository creates a new repository for fixed item data.
func newPgxFixedItemRepository(pool *pgxpool.Pool) portsrepo.FixedItemRepositoryFacade {
	return &PgxFixedItemRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FixedItemRepositoryFacade = (*PgxFixedItemRepository)(nil)

const fixedItemColumns = `fixed_item_id, kind, description, amount, day_of_month, start_date, end_date, category_id, created_at, last_updated_at`

func scanFixedItem(row pgx.Row) (domain.FixedItem, error) {
	var item domain.FixedItem
	err := row.Scan(
		&item.FixedItemID,
		&item.Kind,
		&item.Description,
		&item.Amount,
		&item.DayOfMonth,
		&item.StartDate,
		&item.EndDate,
		&item.CategoryID,
		&item.CreatedAt,
		&item.LastUpdatedAt,
	)
	return item, err
}

func (r *PgxFixedItemRepository) SaveFixedItem(ctx context.Context, item domain.FixedItem) error {
	query := `
		INSERT INTO fixed_items (` + fixedItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		item.FixedItemID,
		item.Kind,
		item.Description,
		item.Amount,
		item.DayOfMonth,
		item.StartDate,
		item.EndDate,
		item.CategoryID,
		item.CreatedAt,
		item.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save fixed item %s: %w", item.FixedItemID, mapScanError(err))
	}
	return nil
}

func (r *PgxFixedItemRepository) FindFixedItemByID(ctx context.Context, fixedItemID string) (*domain.FixedItem, error) {
	query := `SELECT ` + fixedItemColumns + ` FROM fixed_items WHERE fixed_item_id = $1;`
	item, err := scanFixedItem(r.Pool.QueryRow(ctx, query, fixedItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fixed item by ID %s: %w", fixedItemID, err)
	}
	return &item, nil
}

func (r *PgxFixedItemRepository) ListFixedItems(ctx context.Context, kind *domain.Kind) ([]domain.FixedItem, error) {
	query := `SELECT ` + fixedItemColumns + ` FROM fixed_items`
	args := []any{}
	if kind != nil {
		query += ` WHERE kind = $1`
		args = append(args, *kind)
	}
	query += ` ORDER BY day_of_month, description;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FixedItem, error) {
		return scanFixedItem(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect fixed items: %w", err)
	}
	return items, nil
}

func (r *PgxFixedItemRepository) UpdateFixedItem(ctx context.Context, item domain.FixedItem) error {
	query := `
		UPDATE fixed_items
		SET kind = $2, description = $3, amount = $4, day_of_month = $5,
			start_date = $6, end_date = $7, category_id = $8, last_updated_at = $9
		WHERE fixed_item_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		item.FixedItemID,
		item.Kind,
		item.Description,
		item.Amount,
		item.DayOfMonth,
		item.StartDate,
		item.EndDate,
		item.CategoryID,
		item.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update fixed item %s: %w", item.FixedItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteFixedItem removes the item and its variations in one transaction, so
// an orphaned variation can never outlive a committed delete.
func (r *PgxFixedItemRepository) DeleteFixedItem(ctx context.Context, fixedItemID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM monthly_variations WHERE fixed_item_id = $1;`, fixedItemID); err != nil {
		return fmt.Errorf("failed to delete variations of fixed item %s: %w", fixedItemID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM fixed_items WHERE fixed_item_id = $1;`, fixedItemID)
	if err != nil {
		return fmt.Errorf("failed to delete fixed item %s: %w", fixedItemID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return r.Commit(ctx, tx)
}
