package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

// LookupService lists the accounts and categories records refer to.
type LookupService struct {
	BaseService
	lookupRepo portsrepo.LookupReader
}

func NewLookupService(lookupRepo portsrepo.LookupReader) *LookupService {
	return &LookupService{lookupRepo: lookupRepo}
}

var _ portssvc.LookupSvc = (*LookupService)(nil)

func (s *LookupService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.lookupRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *LookupService) ListCategories(ctx context.Context, kind *domain.TransactionKind) ([]domain.Category, error) {
	categories, err := s.lookupRepo.ListCategories(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

// loadLookups fetches accounts and categories of kind. A nil reader yields empty lookups.
func loadLookups(ctx context.Context, reader portsrepo.LookupReader, kind *domain.TransactionKind) (domain.Lookups, error) {
	if reader == nil {
		return domain.Lookups{}, nil
	}
	accounts, err := reader.ListAccounts(ctx)
	if err != nil {
		return domain.Lookups{}, fmt.Errorf("failed to list accounts: %w", err)
	}
	categories, err := reader.ListCategories(ctx, kind)
	if err != nil {
		return domain.Lookups{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return domain.NewLookups(accounts, categories), nil
}
