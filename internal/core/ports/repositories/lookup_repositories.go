package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// LookupReader exposes the store-owned accounts and categories. The core never writes them.
type LookupReader interface {
	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListCategories retrieves categories, optionally restricted to one kind.
	ListCategories(ctx context.Context, kind *domain.TransactionKind) ([]domain.Category, error)
}
