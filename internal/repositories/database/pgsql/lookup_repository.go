package pgsql

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLookupRepository struct {
	pool *pgxpool.Pool
}

func newPgxLookupRepository(pool *pgxpool.Pool) *PgxLookupRepository {
	return &PgxLookupRepository{pool: pool}
}

var _ portsrepo.LookupReader = (*PgxLookupRepository)(nil)

// ListAccounts retrieves all accounts ordered by name.
func (r *PgxLookupRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT account_id, name, currency_code FROM accounts ORDER BY name, account_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to list accounts", classifyError(err))
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to scan accounts", classifyError(err))
	}
	return mapping.ToDomainAccounts(ms), nil
}

// ListCategories retrieves categories for kind plus the ones shared by all kinds.
func (r *PgxLookupRepository) ListCategories(ctx context.Context, kind *domain.TransactionKind) ([]domain.Category, error) {
	query := `SELECT category_id, name, kind FROM categories`
	args := []any{}
	if kind != nil {
		query += ` WHERE kind = $1 OR kind IS NULL`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY name, category_id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to list categories", classifyError(err))
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to scan categories", classifyError(err))
	}
	return mapping.ToDomainCategories(ms), nil
}
