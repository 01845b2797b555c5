package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fincontrol/fincontrol_app/internal/apperrors"
	"github.com/fincontrol/fincontrol_app/internal/core/domain"
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxVariationRepository struct {
	BaseRepository
}

// newPgxVariationRepository creates a new repository for monthly variations.
func newPgxVariationRepository(pool *pgxpool.Pool) portsrepo.VariationRepositoryFacade {
	return &PgxVariationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VariationRepositoryFacade = (*PgxVariationRepository)(nil)

const variationColumns = `variation_id, fixed_item_id, kind, year, month, amount, created_at, last_updated_at`

func scanVariation(row pgx.Row) (domain.MonthlyVariation, error) {
	var v domain.MonthlyVariation
	var month int
	err := row.Scan(
		&v.VariationID,
		&v.FixedItemID,
		&v.Kind,
		&v.Year,
		&month,
		&v.Amount,
		&v.CreatedAt,
		&v.LastUpdatedAt,
	)
	v.Month = time.Month(month)
	return v, err
}

// SaveVariation inserts a new variation. The unique index on
// (fixed_item_id, kind, year, month) surfaces as ErrDuplicate when a
// concurrent writer raced the upsert check.
func (r *PgxVariationRepository) SaveVariation(ctx context.Context, variation domain.MonthlyVariation) error {
	query := `
		INSERT INTO monthly_variations (` + variationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		variation.VariationID,
		variation.FixedItemID,
		variation.Kind,
		variation.Year,
		int(variation.Month),
		variation.Amount,
		variation.CreatedAt,
		variation.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save variation %s: %w", variation.VariationID, mapScanError(err))
	}
	return nil
}

func (r *PgxVariationRepository) FindVariationByID(ctx context.Context, variationID string) (*domain.MonthlyVariation, error) {
	query := `SELECT ` + variationColumns + ` FROM monthly_variations WHERE variation_id = $1;`
	v, err := scanVariation(r.Pool.QueryRow(ctx, query, variationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find variation by ID %s: %w", variationID, err)
	}
	return &v, nil
}

func (r *PgxVariationRepository) FindVariationByTuple(ctx context.Context, fixedItemID string, kind domain.Kind, year int, month time.Month) (*domain.MonthlyVariation, error) {
	query := `
		SELECT ` + variationColumns + `
		FROM monthly_variations
		WHERE fixed_item_id = $1 AND kind = $2 AND year = $3 AND month = $4;
	`
	v, err := scanVariation(r.Pool.QueryRow(ctx, query, fixedItemID, kind, year, int(month)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find variation for item %s %d-%02d: %w", fixedItemID, year, month, err)
	}
	return &v, nil
}

func (r *PgxVariationRepository) ListVariations(ctx context.Context, fixedItemID *string) ([]domain.MonthlyVariation, error) {
	query := `SELECT ` + variationColumns + ` FROM monthly_variations`
	args := []any{}
	if fixedItemID != nil {
		query += ` WHERE fixed_item_id = $1`
		args = append(args, *fixedItemID)
	}
	query += ` ORDER BY year, month;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query variations: %w", err)
	}
	defer rows.Close()

	variations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonthlyVariation, error) {
		return scanVariation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect variations: %w", err)
	}
	return variations, nil
}

func (r *PgxVariationRepository) UpdateVariation(ctx context.Context, variation domain.MonthlyVariation) error {
	query := `
		UPDATE monthly_variations
		SET amount = $2, last_updated_at = $3
		WHERE variation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, variation.VariationID, variation.Amount, variation.LastUpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update variation %s: %w", variation.VariationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVariationRepository) DeleteVariation(ctx context.Context, variationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM monthly_variations WHERE variation_id = $1;`, variationID)
	if err != nil {
		return fmt.Errorf("failed to delete variation %s: %w", variationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
