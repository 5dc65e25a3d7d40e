package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedDashboardStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore(memory.DefaultAccounts, memory.DefaultCategories)
	records := []domain.Transaction{
		{AccountID: "acc_checking", CategoryID: "cat_rent", Kind: domain.KindExpense, AmountMinor: 90000, CurrencyCode: "USD",
			Date: day(2024, 3, 1), NextDate: timePtr(day(2024, 4, 1)), Description: "Rent"},
		{AccountID: "acc_cash", CategoryID: "cat_groceries", Kind: domain.KindExpense, AmountMinor: 1250, CurrencyCode: "EUR",
			Date: day(2024, 3, 14), Description: "Market"},
		{AccountID: "acc_checking", CategoryID: "cat_groceries", Kind: domain.KindExpense, AmountMinor: 4000, CurrencyCode: "USD",
			Date: day(2024, 3, 10), Description: "Supermarket"},
		{AccountID: "acc_checking", CategoryID: "cat_utilities", Kind: domain.KindExpense, AmountMinor: 6000, CurrencyCode: "USD",
			Date: day(2024, 3, 20), Description: "Power"},
		{AccountID: "acc_checking", CategoryID: "cat_salary", Kind: domain.KindIncome, AmountMinor: 300000, CurrencyCode: "USD",
			Date: day(2024, 3, 1)},
	}
	for _, r := range records {
		_, err := store.CreateTransaction(ctx, r)
		require.NoError(t, err)
	}
	return store
}

func TestDashboard_AssemblesAllViews(t *testing.T) {
	store := seedDashboardStore(t)
	svc := services.NewDashboardService(store, store, services.WithDashboardClock(fixedClock(day(2024, 3, 15))))

	dash, err := svc.Dashboard(context.Background(), domain.KindExpense, domain.FilterCriteria{})

	require.NoError(t, err)
	require.Len(t, dash.Settled, 3)
	assert.Equal(t, "Market", dash.Settled[0].Description)
	assert.Equal(t, "Rent", dash.Settled[2].Description)

	require.Len(t, dash.Upcoming, 2)
	assert.Equal(t, "Power", dash.Upcoming[0].Transaction.Description)
	assert.True(t, dash.Upcoming[1].IsVirtual())

	require.Len(t, dash.Summary.Totals, 2)
	assert.Equal(t, "EUR", dash.Summary.Totals[0].CurrencyCode)
	assert.Equal(t, "EUR", dash.Summary.KPIs.CurrencyCode)
	assert.Equal(t, int64(1250), dash.Summary.KPIs.ThisMonth.Minor)
}

func TestDashboard_PinnedCurrencyAndSearch(t *testing.T) {
	store := seedDashboardStore(t)
	svc := services.NewDashboardService(store, store, services.WithDashboardClock(fixedClock(day(2024, 3, 15))))

	dash, err := svc.Dashboard(context.Background(), domain.KindExpense, domain.FilterCriteria{CurrencyCode: "USD"})
	require.NoError(t, err)
	assert.Equal(t, "USD", dash.Summary.KPIs.CurrencyCode)
	assert.Equal(t, int64(94000), dash.Summary.KPIs.ThisMonth.Minor)
	require.Len(t, dash.Summary.Categories, 2)
	assert.Equal(t, "Rent", dash.Summary.Categories[0].Name)
	assert.Equal(t, int64(96), dash.Summary.Categories[0].Percent)

	upcoming, err := svc.Upcoming(context.Background(), domain.KindExpense, domain.FilterCriteria{SearchText: "utilities"})
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Power", upcoming[0].Transaction.Description)
}

func TestDashboard_StoreFailure(t *testing.T) {
	repo := new(MockTransactionRepository)
	lookups := new(MockLookupReader)
	repo.On("ListTransactions", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("query: %w", apperrors.ErrStoreUnavailable))
	lookups.On("ListAccounts", mock.Anything).Return([]domain.Account{}, nil).Maybe()
	lookups.On("ListCategories", mock.Anything, mock.Anything).Return([]domain.Category{}, nil).Maybe()

	svc := services.NewDashboardService(repo, lookups)
	dash, err := svc.Dashboard(context.Background(), domain.KindExpense, domain.FilterCriteria{})

	assert.Nil(t, dash)
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestCurrencyService(t *testing.T) {
	svc := services.NewCurrencyService()

	c, err := svc.GetCurrencyByCode(context.Background(), "kwd")
	require.NoError(t, err)
	assert.Equal(t, 3, c.Precision)

	_, err = svc.GetCurrencyByCode(context.Background(), "ZZZ")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	list, err := svc.ListCurrencies(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, list)
}
