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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (category_id, name, kind, color, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Kind,
		category.Color,
		category.Description,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, mapScanError(err))
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, kind, color, description, created_at, last_updated_at
		FROM categories
		WHERE category_id = $1;
	`
	var category domain.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&category.CategoryID,
		&category.Name,
		&category.Kind,
		&category.Color,
		&category.Description,
		&category.CreatedAt,
		&category.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by ID %s: %w", categoryID, err)
	}
	return &category, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context, kind *domain.Kind) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, kind, color, description, created_at, last_updated_at
		FROM categories
	`
	args := []any{}
	if kind != nil {
		query += ` WHERE kind = $1`
		args = append(args, *kind)
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		var category domain.Category
		err := row.Scan(
			&category.CategoryID,
			&category.Name,
			&category.Kind,
			&category.Color,
			&category.Description,
			&category.CreatedAt,
			&category.LastUpdatedAt,
		)
		return category, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect categories: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories
		SET name = $2, kind = $3, color = $4, description = $5, last_updated_at = $6
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		category.Kind,
		category.Color,
		category.Description,
		category.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes the category row only. Referencing transactions and
// fixed items keep their category_id; reads resolve the dangling reference to
// the Uncategorized placeholder.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
