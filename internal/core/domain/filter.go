package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRangePreset selects a date window relative to "today".
type DateRangePreset string

const (
	RangeAll       DateRangePreset = "ALL"
	RangeThisMonth DateRangePreset = "THIS_MONTH"
	RangeLastMonth DateRangePreset = "LAST_MONTH"
	RangeLast30    DateRangePreset = "LAST_30"
	RangeLast90    DateRangePreset = "LAST_90"
	RangeThisYear  DateRangePreset = "THIS_YEAR"
	RangeCustom    DateRangePreset = "CUSTOM"
)

// DateRange is a preset or, for RangeCustom, explicit inclusive bounds.
// Either bound of a custom range may be nil (open).
type DateRange struct {
	Preset DateRangePreset
	Start  *time.Time
	End    *time.Time
}

// FilterCriteria is shared by the settled and upcoming views.
// Empty AccountID/CategoryID/CurrencyCode mean "all".
type FilterCriteria struct {
	SearchText   string
	AccountID    string
	CategoryID   string
	CurrencyCode string
	DateRange    DateRange
	MinAmount    *decimal.Decimal // major units, inclusive
	MaxAmount    *decimal.Decimal // major units, inclusive
}
