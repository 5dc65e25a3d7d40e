package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// ListTransactions retrieves every non-deleted record, optionally restricted to one kind.
	ListTransactions(ctx context.Context, kind *domain.TransactionKind) ([]domain.Transaction, error)

	// FindTransactionByID retrieves a specific record. Returns apperrors.ErrNotFound when absent or deleted.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// CreateTransaction persists a new record and returns it with the store-assigned ID.
	CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update. patch.ClearNextDate removes the next date.
	UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch, updatedBy string) (*domain.Transaction, error)

	// DeleteTransaction soft-deletes a record.
	DeleteTransaction(ctx context.Context, transactionID string, deletedBy string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
// This is a facade for clients that need access to all operations
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
