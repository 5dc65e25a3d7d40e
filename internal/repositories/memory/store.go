// Package memory is an in-process implementation of the transaction and lookup stores.
// Data is lost on restart; it backs local development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/google/uuid"
)

type entry struct {
	txn       domain.Transaction
	deletedAt *time.Time
}

// Store keeps records in insertion order and is safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	order      []string
	records    map[string]*entry
	accounts   []domain.Account
	categories []domain.Category
}

// NewStore creates an empty store with the given lookups.
func NewStore(accounts []domain.Account, categories []domain.Category) *Store {
	return &Store{
		records:    make(map[string]*entry),
		accounts:   append([]domain.Account(nil), accounts...),
		categories: append([]domain.Category(nil), categories...),
	}
}

// DefaultAccounts and DefaultCategories seed a fresh development store.
var (
	DefaultAccounts = []domain.Account{
		{AccountID: "acc_checking", Name: "Checking", CurrencyCode: "USD"},
		{AccountID: "acc_cash", Name: "Cash", CurrencyCode: "EUR"},
		{AccountID: "acc_broker", Name: "Brokerage", CurrencyCode: "USD"},
	}
	DefaultCategories = []domain.Category{
		{CategoryID: "cat_groceries", Name: "Groceries", Kind: domain.KindExpense},
		{CategoryID: "cat_rent", Name: "Rent", Kind: domain.KindExpense},
		{CategoryID: "cat_utilities", Name: "Utilities", Kind: domain.KindExpense},
		{CategoryID: "cat_salary", Name: "Salary", Kind: domain.KindIncome},
		{CategoryID: "cat_etf", Name: "ETF", Kind: domain.KindInvestment},
	}
)

func (s *Store) ListTransactions(ctx context.Context, kind *domain.TransactionKind) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Transaction, 0, len(s.order))
	for _, id := range s.order {
		e := s.records[id]
		if e.deletedAt != nil {
			continue
		}
		if kind != nil && e.txn.Kind != *kind {
			continue
		}
		// Return a copy to avoid external modifications
		result = append(result, e.txn.Clone())
	}
	return result, nil
}

func (s *Store) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.records[transactionID]
	if !ok || e.deletedAt != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	txn := e.txn.Clone()
	return &txn, nil
}

func (s *Store) CreateTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := txn.Clone()
	stored.ID = uuid.NewString()
	if stored.Tags == nil {
		stored.Tags = []string{}
	}
	s.records[stored.ID] = &entry{txn: stored}
	s.order = append(s.order, stored.ID)

	out := stored.Clone()
	return &out, nil
}

func (s *Store) UpdateTransaction(ctx context.Context, transactionID string, patch domain.TransactionPatch, updatedBy string) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[transactionID]
	if !ok || e.deletedAt != nil {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	updated := patch.ApplyTo(e.txn)
	updated.LastUpdatedAt = time.Now().UTC()
	updated.LastUpdatedBy = updatedBy
	e.txn = updated

	out := updated.Clone()
	return &out, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, transactionID string, deletedBy string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[transactionID]
	if !ok || e.deletedAt != nil {
		return fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	now := time.Now().UTC()
	e.deletedAt = &now
	e.txn.LastUpdatedAt = now
	e.txn.LastUpdatedBy = deletedBy
	return nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Account{}, s.accounts...), nil
}

func (s *Store) ListCategories(ctx context.Context, kind *domain.TransactionKind) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if kind != nil && c.Kind != "" && c.Kind != *kind {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

// Ensure Store implements the repository ports.
var (
	_ portsrepo.TransactionRepositoryFacade = (*Store)(nil)
	_ portsrepo.LookupReader                = (*Store)(nil)
)

// NewRepositoryProvider backs both ports with one store seeded with the default lookups.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	store := NewStore(DefaultAccounts, DefaultCategories)
	return portsrepo.RepositoryProvider{
		TransactionRepo: store,
		LookupRepo:      store,
	}
}
