package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/aggregation"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/filtering"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/projection"
	"golang.org/x/sync/errgroup"
)

// DashboardService assembles settled, upcoming and summary views from one fetch.
type DashboardService struct {
	BaseService
	txnRepo    portsrepo.TransactionReader
	lookupRepo portsrepo.LookupReader
}

// DashboardServiceOption is a functional option for configuring the dashboard service
type DashboardServiceOption func(*DashboardService)

// WithDashboardClock overrides the clock that decides what "today" is
func WithDashboardClock(clock func() time.Time) DashboardServiceOption {
	return func(s *DashboardService) {
		s.Clock = clock
	}
}

// NewDashboardService creates a new dashboard service with the provided options
func NewDashboardService(txnRepo portsrepo.TransactionReader, lookupRepo portsrepo.LookupReader, options ...DashboardServiceOption) *DashboardService {
	svc := &DashboardService{txnRepo: txnRepo, lookupRepo: lookupRepo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.DashboardSvc = (*DashboardService)(nil)

// load fetches records, accounts and categories concurrently. Nothing is
// assembled until all three calls returned.
func (s *DashboardService) load(ctx context.Context, kind domain.TransactionKind) ([]domain.Transaction, domain.Lookups, error) {
	var (
		records    []domain.Transaction
		accounts   []domain.Account
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.txnRepo.ListTransactions(gctx, &kind)
		if err != nil {
			return fmt.Errorf("failed to list transactions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		accounts, err = s.lookupRepo.ListAccounts(gctx)
		if err != nil {
			return fmt.Errorf("failed to list accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		categories, err = s.lookupRepo.ListCategories(gctx, &kind)
		if err != nil {
			return fmt.Errorf("failed to list categories: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard data", slog.String("kind", string(kind)))
		return nil, domain.Lookups{}, err
	}
	return s.OwnedRecords(ctx, records), domain.NewLookups(accounts, categories), nil
}

func (s *DashboardService) Dashboard(ctx context.Context, kind domain.TransactionKind, criteria domain.FilterCriteria) (*domain.Dashboard, error) {
	records, lookups, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}

	today := s.Now()
	settled := filtering.Apply(projection.Settled(records, today), criteria, lookups, today)
	SortNewestFirst(settled)
	upcoming := filtering.ApplyOccurrences(projection.Project(records, today), criteria, lookups, today)

	s.LogDebug(ctx, "Dashboard assembled",
		slog.String("kind", string(kind)),
		slog.Int("settled", len(settled)),
		slog.Int("upcoming", len(upcoming)))

	return &domain.Dashboard{
		Kind:     kind,
		Settled:  settled,
		Upcoming: upcoming,
		Summary:  aggregation.Summarize(settled, criteria.CurrencyCode, lookups, today),
	}, nil
}

func (s *DashboardService) Upcoming(ctx context.Context, kind domain.TransactionKind, criteria domain.FilterCriteria) ([]domain.Occurrence, error) {
	records, lookups, err := s.load(ctx, kind)
	if err != nil {
		return nil, err
	}
	today := s.Now()
	return filtering.ApplyOccurrences(projection.Project(records, today), criteria, lookups, today), nil
}
