package aggregation

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(category string, minor int64, currency string, date time.Time) domain.Transaction {
	return domain.Transaction{
		AccountID: "acc_1", CategoryID: category, Kind: domain.KindExpense,
		AmountMinor: minor, CurrencyCode: currency, Date: date, Tags: []string{},
	}
}

func TestTotals_CurrencyIsolation(t *testing.T) {
	records := []domain.Transaction{
		tx("c", 1000, "USD", day(2024, 3, 1)),
		tx("c", 500, "JPY", day(2024, 3, 1)),
		tx("c", 250, "USD", day(2024, 3, 2)),
	}

	totals := Totals(records)

	require.Len(t, totals, 2)
	assert.Equal(t, domain.CurrencyTotal{CurrencyCode: "USD", TotalMinor: 1250, Total: "12.50", Count: 2}, totals[0])
	assert.Equal(t, domain.CurrencyTotal{CurrencyCode: "JPY", TotalMinor: 500, Total: "500", Count: 1}, totals[1])
}

func TestChooseCurrency(t *testing.T) {
	records := []domain.Transaction{tx("c", 1, "EUR", day(2024, 1, 1)), tx("c", 1, "USD", day(2024, 1, 1))}
	assert.Equal(t, "EUR", ChooseCurrency(records, ""))
	assert.Equal(t, "USD", ChooseCurrency(records, "USD"))
	assert.Equal(t, "", ChooseCurrency(nil, ""))
}

func TestKPIs(t *testing.T) {
	today := day(2024, 3, 15)
	records := []domain.Transaction{
		tx("c", 1000, "USD", day(2024, 1, 10)),
		tx("c", 2000, "USD", day(2024, 2, 10)),
		tx("c", 4001, "USD", day(2024, 3, 1)),
		tx("c", 9999, "USD", day(2023, 12, 31)),
		tx("c", 5000, "USD", day(2024, 4, 1)),
	}

	k := KPIs(records, "USD", today)

	assert.Equal(t, int64(2000), k.LastMonth.Minor)
	assert.Equal(t, "20.00", k.LastMonth.Major)
	assert.Equal(t, int64(4001), k.ThisMonth.Minor)
	// (1000 + 2000 + 4001) / 3 = 2333.67
	assert.Equal(t, int64(2334), k.YearlyAverage.Minor)
	assert.Equal(t, "23.34", k.YearlyAverage.Major)
}

func TestKPIs_JanuaryUsesDecemberAsLastMonth(t *testing.T) {
	k := KPIs([]domain.Transaction{tx("c", 300, "JPY", day(2023, 12, 5))}, "JPY", day(2024, 1, 2))
	assert.Equal(t, int64(300), k.LastMonth.Minor)
	assert.Equal(t, int64(0), k.YearlyAverage.Minor)
}

func TestCategoryBreakdown(t *testing.T) {
	lookups := domain.NewLookups(nil, []domain.Category{{CategoryID: "a", Name: "Alpha"}})
	records := []domain.Transaction{
		tx("a", 500, "USD", day(2024, 3, 1)),
		tx("b", 500, "USD", day(2024, 3, 1)),
		tx("c", 300, "USD", day(2024, 3, 1)),
		tx("d", 200, "USD", day(2024, 3, 1)),
		tx("e", 100, "USD", day(2024, 3, 1)),
		tx("f", 100, "USD", day(2024, 3, 1)),
		tx("g", 0, "USD", day(2024, 3, 1)),
	}

	shares := CategoryBreakdown(records, lookups)

	require.Len(t, shares, 5)
	assert.Equal(t, "a", shares[0].CategoryID)
	assert.Equal(t, "Alpha", shares[0].Name)
	assert.Equal(t, "b", shares[1].CategoryID)
	assert.Equal(t, "e", shares[4].CategoryID)
	assert.Equal(t, int64(29), shares[0].Percent) // 500/1700
	assert.Equal(t, int64(6), shares[4].Percent)  // 100/1700
}

func TestCategoryBreakdown_NonPositiveTotal(t *testing.T) {
	records := []domain.Transaction{
		tx("a", 500, "USD", day(2024, 3, 1)),
		tx("b", -800, "USD", day(2024, 3, 1)),
	}

	shares := CategoryBreakdown(records, domain.Lookups{})

	require.Len(t, shares, 1)
	assert.Equal(t, int64(0), shares[0].Percent)
}

func TestDaily(t *testing.T) {
	today := time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC)
	records := []domain.Transaction{
		tx("c", 100, "USD", day(2024, 3, 9)),
		tx("c", 300, "USD", day(2024, 3, 15)),
		tx("c", 50, "USD", time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)),
		tx("c", 999, "USD", day(2024, 3, 8)),
		tx("c", 999, "USD", day(2024, 3, 16)),
	}

	points, peak := Daily(records, today)

	require.Len(t, points, 7)
	assert.Equal(t, day(2024, 3, 9), points[0].Day)
	assert.Equal(t, int64(100), points[0].SumMinor)
	assert.Equal(t, day(2024, 3, 15), points[6].Day)
	assert.Equal(t, int64(350), points[6].SumMinor)
	assert.Equal(t, int64(350), peak)
}

func TestSummarize_PinnedCurrencyOnlyFeedsKPIs(t *testing.T) {
	today := day(2024, 3, 15)
	records := []domain.Transaction{
		tx("a", 1000, "EUR", day(2024, 3, 14)),
		tx("a", 700, "JPY", day(2024, 3, 14)),
	}

	s := Summarize(records, "JPY", domain.Lookups{}, today)

	assert.Len(t, s.Totals, 2)
	assert.Equal(t, "JPY", s.KPIs.CurrencyCode)
	assert.Equal(t, int64(700), s.KPIs.ThisMonth.Minor)
	require.Len(t, s.Categories, 1)
	assert.Equal(t, int64(700), s.Categories[0].SumMinor)
	assert.Equal(t, int64(100), s.Categories[0].Percent)
	assert.Equal(t, int64(700), s.DailyMax)
}
