// Package aggregation computes per-currency totals and summary figures.
// Amounts of different currencies are never added together.
package aggregation

import (
	"sort"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/money"
	"github.com/shopspring/decimal"
)

const (
	topCategories = 5
	dailyWindow   = 7
)

// Totals sums records per currency, in order of first appearance.
func Totals(records []domain.Transaction) []domain.CurrencyTotal {
	index := make(map[string]int)
	totals := make([]domain.CurrencyTotal, 0)
	for _, r := range records {
		i, ok := index[r.CurrencyCode]
		if !ok {
			i = len(totals)
			index[r.CurrencyCode] = i
			totals = append(totals, domain.CurrencyTotal{CurrencyCode: r.CurrencyCode})
		}
		totals[i].TotalMinor += r.AmountMinor
		totals[i].Count++
	}
	for i := range totals {
		totals[i].Total = money.ToMajor(totals[i].TotalMinor, totals[i].CurrencyCode)
	}
	return totals
}

// ChooseCurrency picks the currency KPIs are computed in: the pinned one when
// set, otherwise the first currency present. It returns "" for an empty set.
func ChooseCurrency(records []domain.Transaction, pinned string) string {
	if pinned != "" {
		return pinned
	}
	if len(records) == 0 {
		return ""
	}
	return records[0].CurrencyCode
}

// Summarize builds the summary of a filtered, single-kind record set.
func Summarize(records []domain.Transaction, pinnedCurrency string, lookups domain.Lookups, today time.Time) domain.Summary {
	currency := ChooseCurrency(records, pinnedCurrency)

	inCurrency := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		if r.CurrencyCode == currency {
			inCurrency = append(inCurrency, r)
		}
	}

	daily, dailyMax := Daily(inCurrency, today)
	return domain.Summary{
		Totals:     Totals(records),
		KPIs:       KPIs(inCurrency, currency, today),
		Categories: CategoryBreakdown(inCurrency, lookups),
		Daily:      daily,
		DailyMax:   dailyMax,
	}
}

// KPIs computes last month, this month and the yearly average. records must
// already be restricted to currency.
func KPIs(records []domain.Transaction, currency string, today time.Time) domain.KPIs {
	thisMonth := domain.MonthStart(today)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	var last, this, ytd int64
	for _, r := range records {
		m := domain.MonthStart(r.Date)
		switch {
		case m.Equal(lastMonth):
			last += r.AmountMinor
		case m.Equal(thisMonth):
			this += r.AmountMinor
		}
		if m.Year() == thisMonth.Year() && !m.After(thisMonth) {
			ytd += r.AmountMinor
		}
	}

	months := int64(thisMonth.Month())
	avg := decimal.NewFromInt(ytd).Div(decimal.NewFromInt(months)).Round(0).IntPart()

	kpi := func(minor int64) domain.KPI {
		return domain.KPI{Minor: minor, Major: money.ToMajor(minor, currency)}
	}
	return domain.KPIs{
		CurrencyCode:  currency,
		LastMonth:     kpi(last),
		ThisMonth:     kpi(this),
		YearlyAverage: kpi(avg),
	}
}

// CategoryBreakdown returns the top categories by positive sum. Percentages are
// relative to the total of all records passed in.
func CategoryBreakdown(records []domain.Transaction, lookups domain.Lookups) []domain.CategoryShare {
	var total int64
	sums := make(map[string]int64)
	for _, r := range records {
		total += r.AmountMinor
		sums[r.CategoryID] += r.AmountMinor
	}

	shares := make([]domain.CategoryShare, 0, len(sums))
	for id, sum := range sums {
		if sum <= 0 {
			continue
		}
		shares = append(shares, domain.CategoryShare{CategoryID: id, Name: lookups.CategoryName(id), SumMinor: sum})
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].SumMinor != shares[j].SumMinor {
			return shares[i].SumMinor > shares[j].SumMinor
		}
		return shares[i].CategoryID < shares[j].CategoryID
	})
	if len(shares) > topCategories {
		shares = shares[:topCategories]
	}

	for i := range shares {
		if total <= 0 {
			shares[i].Percent = 0
			continue
		}
		shares[i].Percent = decimal.NewFromInt(shares[i].SumMinor).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(total)).
			Round(0).IntPart()
	}
	return shares
}

// Daily returns the sums of the seven days ending today, oldest first, and the largest of them.
func Daily(records []domain.Transaction, today time.Time) ([]domain.DailyPoint, int64) {
	end := domain.DayOf(today)
	start := end.AddDate(0, 0, -(dailyWindow - 1))

	points := make([]domain.DailyPoint, dailyWindow)
	for i := range points {
		points[i].Day = start.AddDate(0, 0, i)
	}
	for _, r := range records {
		d := domain.DayOf(r.Date)
		if d.Before(start) || d.After(end) {
			continue
		}
		idx := int(d.Sub(start).Hours() / 24)
		points[idx].SumMinor += r.AmountMinor
	}

	var peak int64
	for _, p := range points {
		if p.SumMinor > peak {
			peak = p.SumMinor
		}
	}
	return points, peak
}
