package pgsql

import (
	portsrepo "github.com/fincontrol/fincontrol_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every pgx-backed repository over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CategoryRepo:    newPgxCategoryRepository(pool),
		FixedItemRepo:   newPgxFixedItemRepository(pool),
		VariationRepo:   newPgxVariationRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		PurchaseRepo:    newPgxPurchaseRepository(pool),
	}
}
