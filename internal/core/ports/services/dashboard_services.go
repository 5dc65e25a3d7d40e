package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// DashboardSvc assembles the read views of one record kind.
type DashboardSvc interface {
	// Dashboard returns the settled list, the upcoming list and the summary under one filter.
	Dashboard(ctx context.Context, kind domain.TransactionKind, criteria domain.FilterCriteria) (*domain.Dashboard, error)

	// Upcoming returns only the filtered upcoming occurrences.
	Upcoming(ctx context.Context, kind domain.TransactionKind, criteria domain.FilterCriteria) ([]domain.Occurrence, error)
}

// LookupSvc exposes the accounts and categories used to label records.
type LookupSvc interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListCategories(ctx context.Context, kind *domain.TransactionKind) ([]domain.Category, error)
}
