package pgsql

import (
	"time"

	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/repositories/cache"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. Lookups are served
// through an expiring cache when cacheSize is positive.
func NewRepositoryProvider(dbPool *pgxpool.Pool, cacheSize int, cacheTTL time.Duration) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)

	var lookupRepo portsrepo.LookupReader = newPgxLookupRepository(dbPool)
	if cacheSize > 0 {
		lookupRepo = cache.NewLookupReader(lookupRepo, cacheSize, cacheTTL)
	}

	return portsrepo.RepositoryProvider{
		TransactionRepo: transactionRepo,
		LookupRepo:      lookupRepo,
	}
}
