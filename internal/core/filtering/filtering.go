// Package filtering applies one predicate to both the settled and the upcoming lists.
package filtering

import (
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/money"
)

// Window is a resolved, inclusive day range. A nil bound is open.
type Window struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether t falls inside the window at day granularity.
func (w Window) Contains(t time.Time) bool {
	d := domain.DayOf(t)
	if w.Start != nil && d.Before(*w.Start) {
		return false
	}
	if w.End != nil && d.After(*w.End) {
		return false
	}
	return true
}

// Resolve turns a date range preset into concrete UTC day bounds relative to today.
func Resolve(r domain.DateRange, today time.Time) Window {
	day := domain.DayOf(today)
	month := domain.MonthStart(day)
	bounded := func(start, end time.Time) Window {
		return Window{Start: &start, End: &end}
	}

	switch r.Preset {
	case domain.RangeThisMonth:
		return bounded(month, month.AddDate(0, 1, -1))
	case domain.RangeLastMonth:
		return bounded(month.AddDate(0, -1, 0), month.AddDate(0, 0, -1))
	case domain.RangeLast30:
		return bounded(day.AddDate(0, 0, -30), day)
	case domain.RangeLast90:
		return bounded(day.AddDate(0, 0, -90), day)
	case domain.RangeThisYear:
		jan := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		return bounded(jan, jan.AddDate(1, 0, -1))
	case domain.RangeCustom:
		var w Window
		if r.Start != nil {
			s := domain.DayOf(*r.Start)
			w.Start = &s
		}
		if r.End != nil {
			e := domain.DayOf(*r.End)
			w.End = &e
		}
		return w
	default:
		return Window{}
	}
}

// Matches reports whether t satisfies criteria. window must come from Resolve.
func Matches(t domain.Transaction, c domain.FilterCriteria, lookups domain.Lookups, window Window) bool {
	if c.AccountID != "" && t.AccountID != c.AccountID {
		return false
	}
	if c.CategoryID != "" && t.CategoryID != c.CategoryID {
		return false
	}
	if c.CurrencyCode != "" && !strings.EqualFold(t.CurrencyCode, c.CurrencyCode) {
		return false
	}
	if !window.Contains(t.Date) {
		return false
	}
	if c.MinAmount != nil || c.MaxAmount != nil {
		major := money.ToDecimal(t.AmountMinor, t.CurrencyCode)
		if c.MinAmount != nil && major.LessThan(*c.MinAmount) {
			return false
		}
		if c.MaxAmount != nil && major.GreaterThan(*c.MaxAmount) {
			return false
		}
	}
	return matchesText(t, strings.TrimSpace(c.SearchText), lookups)
}

func matchesText(t domain.Transaction, query string, lookups domain.Lookups) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	fields := []string{
		t.Description,
		t.Notes,
		lookups.CategoryName(t.CategoryID),
		lookups.AccountName(t.AccountID),
	}
	fields = append(fields, t.Tags...)
	if t.Investment != nil {
		fields = append(fields, t.Investment.AssetSymbol)
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Apply returns the records matching criteria, preserving order.
func Apply(records []domain.Transaction, c domain.FilterCriteria, lookups domain.Lookups, today time.Time) []domain.Transaction {
	window := Resolve(c.DateRange, today)
	out := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		if Matches(r, c, lookups, window) {
			out = append(out, r)
		}
	}
	return out
}

// ApplyOccurrences filters projected occurrences with the same predicate as Apply.
func ApplyOccurrences(occurrences []domain.Occurrence, c domain.FilterCriteria, lookups domain.Lookups, today time.Time) []domain.Occurrence {
	window := Resolve(c.DateRange, today)
	out := make([]domain.Occurrence, 0, len(occurrences))
	for _, o := range occurrences {
		if Matches(o.Transaction, c, lookups, window) {
			out = append(out, o)
		}
	}
	return out
}
