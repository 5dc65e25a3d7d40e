package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, account_id, category_id, kind, amount_minor, currency_code,
	txn_date, next_date, description, notes, tags, asset_symbol, units,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at, deleted_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactions retrieves every non-deleted record in insertion order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, kind *domain.TransactionKind) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE deleted_at IS NULL`
	args := []any{}
	if kind != nil {
		query += ` AND kind = $1`
		args = append(args, string(*kind))
	}
	query += ` ORDER BY created_at, transaction_id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to list transactions", classifyError(err))
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to scan transactions", classifyError(err))
	}
	return mapping.ToDomainTransactions(ms), nil
}

// FindTransactionByID retrieves a specific non-deleted record.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 AND deleted_at IS NULL`
	return r.findOne(ctx, r.Pool, query, transactionID)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxTransactionRepository) findOne(ctx context.Context, q querier, query string, transactionID string) (*domain.Transaction, error) {
	rows, err := q.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(503, "failed to find transaction", classifyError(err))
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
		}
		return nil, apperrors.NewAppError(503, "failed to scan transaction", classifyError(err))
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// CreateTransaction inserts a new record under a freshly generated ID.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	txn.ID = uuid.NewString()
	m := mapping.ToModelTransaction(txn)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.LastUpdatedAt.IsZero() {
		m.LastUpdatedAt = m.CreatedAt
	}
	if m.LastUpdatedBy == "" {
		m.LastUpdatedBy = m.CreatedBy
	}

	query := `
		INSERT INTO transactions (transaction_id, account_id, category_id, kind, amount_minor, currency_code,
			txn_date, next_date, description, notes, tags, asset_symbol, units,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + transactionColumns

	rows, err := r.Pool.Query(ctx, query,
		m.TransactionID, m.AccountID, m.CategoryID, m.Kind, m.AmountMinor, m.CurrencyCode,
		m.TxnDate, m.NextDate, m.Description, m.Notes, m.Tags, m.AssetSymbol, m.Units,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(storeStatus(err), "failed to create transaction", classifyError(err))
	}
	saved, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(storeStatus(err), "failed to create transaction", classifyError(err))
	}
	d := mapping.ToDomainTransaction(saved)
	return &d, nil
}

// UpdateTransaction locks the row, applies the patch and writes every mutable
// column back inside one database transaction.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch, updatedBy string) (*domain.Transaction, error) {
	if _, err := uuid.Parse(transactionID); err != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	current, err := r.findOne(ctx, tx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1 AND deleted_at IS NULL FOR UPDATE`,
		transactionID)
	if err != nil {
		return nil, err
	}

	updated := patch.ApplyTo(*current)
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = updatedBy
	m := mapping.ToModelTransaction(updated)

	_, err = tx.Exec(ctx, `
		UPDATE transactions
		SET account_id = $2, category_id = $3, amount_minor = $4, txn_date = $5, next_date = $6,
			description = $7, notes = $8, tags = $9, last_updated_at = $10, last_updated_by = $11
		WHERE transaction_id = $1`,
		m.TransactionID, m.AccountID, m.CategoryID, m.AmountMinor, m.TxnDate, m.NextDate,
		m.Description, m.Notes, m.Tags, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(storeStatus(err), "failed to update transaction", classifyError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	out := mapping.ToDomainTransaction(m)
	return &out, nil
}

// DeleteTransaction marks a record as deleted.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, deletedBy string) error {
	if _, err := uuid.Parse(transactionID); err != nil {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	tag, err := r.Pool.Exec(ctx, `
		UPDATE transactions
		SET deleted_at = $2, deleted_by = $3
		WHERE transaction_id = $1 AND deleted_at IS NULL`,
		transactionID, time.Now().UTC(), deletedBy,
	)
	if err != nil {
		return apperrors.NewAppError(storeStatus(err), "failed to delete transaction", classifyError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return nil
}

// storeStatus picks the HTTP status carried by AppError for a write failure.
func storeStatus(err error) int {
	if errors.Is(classifyError(err), apperrors.ErrStoreRejected) {
		return 422
	}
	return 503
}
