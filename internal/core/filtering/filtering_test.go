package filtering

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/projection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var lookups = domain.NewLookups(
	[]domain.Account{{AccountID: "acc_bank", Name: "Main Bank"}, {AccountID: "acc_cash", Name: "Wallet"}},
	[]domain.Category{{CategoryID: "cat_food", Name: "Groceries"}, {CategoryID: "cat_rent", Name: "Rent"}},
)

func tx(id, account, category string, minor int64, currency string, date time.Time) domain.Transaction {
	return domain.Transaction{
		ID: id, AccountID: account, CategoryID: category, Kind: domain.KindExpense,
		AmountMinor: minor, CurrencyCode: currency, Date: date, Tags: []string{},
	}
}

func TestResolve(t *testing.T) {
	today := time.Date(2024, 3, 15, 22, 0, 0, 0, time.UTC)
	tests := []struct {
		preset     domain.DateRangePreset
		start, end time.Time
	}{
		{domain.RangeThisMonth, day(2024, 3, 1), day(2024, 3, 31)},
		{domain.RangeLastMonth, day(2024, 2, 1), day(2024, 2, 29)},
		{domain.RangeLast30, day(2024, 2, 14), day(2024, 3, 15)},
		{domain.RangeLast90, day(2023, 12, 16), day(2024, 3, 15)},
		{domain.RangeThisYear, day(2024, 1, 1), day(2024, 12, 31)},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			w := Resolve(domain.DateRange{Preset: tt.preset}, today)
			require.NotNil(t, w.Start)
			require.NotNil(t, w.End)
			assert.Equal(t, tt.start, *w.Start)
			assert.Equal(t, tt.end, *w.End)
		})
	}

	all := Resolve(domain.DateRange{Preset: domain.RangeAll}, today)
	assert.Nil(t, all.Start)
	assert.Nil(t, all.End)

	start := time.Date(2024, 1, 10, 17, 0, 0, 0, time.UTC)
	custom := Resolve(domain.DateRange{Preset: domain.RangeCustom, Start: &start}, today)
	assert.Equal(t, day(2024, 1, 10), *custom.Start)
	assert.Nil(t, custom.End)
}

func TestApply_CriteriaCombinations(t *testing.T) {
	today := day(2024, 3, 15)
	records := []domain.Transaction{
		tx("1", "acc_bank", "cat_food", 1250, "EUR", day(2024, 3, 2)),
		tx("2", "acc_cash", "cat_food", 300, "EUR", day(2024, 2, 20)),
		tx("3", "acc_bank", "cat_rent", 90000, "USD", day(2024, 3, 1)),
	}
	records[1].Tags = []string{"weekend"}
	records[2].Notes = "March rent"

	ids := func(in []domain.Transaction) []string {
		out := []string{}
		for _, r := range in {
			out = append(out, r.ID)
		}
		return out
	}

	tests := []struct {
		name     string
		criteria domain.FilterCriteria
		want     []string
	}{
		{"no criteria", domain.FilterCriteria{}, []string{"1", "2", "3"}},
		{"account", domain.FilterCriteria{AccountID: "acc_bank"}, []string{"1", "3"}},
		{"category", domain.FilterCriteria{CategoryID: "cat_food"}, []string{"1", "2"}},
		{"currency", domain.FilterCriteria{CurrencyCode: "usd"}, []string{"3"}},
		{"this month", domain.FilterCriteria{DateRange: domain.DateRange{Preset: domain.RangeThisMonth}}, []string{"1", "3"}},
		{"search category name", domain.FilterCriteria{SearchText: "grocer"}, []string{"1", "2"}},
		{"search account name", domain.FilterCriteria{SearchText: "WALLET"}, []string{"2"}},
		{"search tag", domain.FilterCriteria{SearchText: "week"}, []string{"2"}},
		{"search notes", domain.FilterCriteria{SearchText: "march"}, []string{"3"}},
		{"min inclusive", domain.FilterCriteria{MinAmount: dec("12.50")}, []string{"1", "3"}},
		{"max inclusive", domain.FilterCriteria{MaxAmount: dec("12.5")}, []string{"1", "2"}},
		{"range of amounts", domain.FilterCriteria{MinAmount: dec("3"), MaxAmount: dec("12.5")}, []string{"1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(records, tt.criteria, lookups, today)))
		})
	}
}

func TestApply_InvestmentAssetSymbol(t *testing.T) {
	inv := tx("inv", "acc_bank", "cat_food", 10000, "EUR", day(2024, 3, 1))
	inv.Kind = domain.KindInvestment
	inv.Investment = &domain.InvestmentDetails{AssetSymbol: "VWCE", Units: decimal.NewFromInt(1)}

	got := Apply([]domain.Transaction{inv}, domain.FilterCriteria{SearchText: "vwce"}, lookups, day(2024, 3, 15))
	assert.Len(t, got, 1)
}

// The same criteria must select the same logical records from both views.
func TestFilterConsistency_SettledAndUpcoming(t *testing.T) {
	today := day(2024, 3, 15)
	next := day(2024, 3, 25)
	records := []domain.Transaction{
		tx("settled_bank", "acc_bank", "cat_rent", 90000, "USD", day(2024, 3, 1)),
		tx("settled_cash", "acc_cash", "cat_food", 500, "USD", day(2024, 3, 2)),
		tx("future_bank", "acc_bank", "cat_food", 700, "USD", day(2024, 3, 20)),
	}
	records[0].NextDate = &next

	criteria := domain.FilterCriteria{AccountID: "acc_bank", DateRange: domain.DateRange{Preset: domain.RangeThisMonth}}

	settled := Apply(projection.Settled(records, today), criteria, lookups, today)
	upcoming := ApplyOccurrences(projection.Project(records, today), criteria, lookups, today)

	require.Len(t, settled, 1)
	assert.Equal(t, "settled_bank", settled[0].ID)
	require.Len(t, upcoming, 2)
	for _, o := range upcoming {
		assert.Equal(t, "acc_bank", o.Transaction.AccountID)
	}
}
