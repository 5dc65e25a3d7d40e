package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FilterParams are the query parameters shared by the settled, upcoming and dashboard endpoints.
type FilterParams struct {
	Query        string `form:"q"`
	AccountID    string `form:"accountID"`
	CategoryID   string `form:"categoryID"`
	CurrencyCode string `form:"currency"`
	Range        string `form:"range,default=ALL"`
	Start        string `form:"start"` // YYYY-MM-DD, CUSTOM only
	End          string `form:"end"`   // YYYY-MM-DD, CUSTOM only
	MinAmount    string `form:"minAmount"`
	MaxAmount    string `form:"maxAmount"`
}

// ToCriteria validates the parameters and converts them into domain filter criteria.
func (p FilterParams) ToCriteria() (domain.FilterCriteria, error) {
	c := domain.FilterCriteria{
		SearchText:   strings.TrimSpace(p.Query),
		AccountID:    p.AccountID,
		CategoryID:   p.CategoryID,
		CurrencyCode: strings.ToUpper(p.CurrencyCode),
	}

	preset := domain.DateRangePreset(strings.ToUpper(p.Range))
	if preset == "" {
		preset = domain.RangeAll
	}
	switch preset {
	case domain.RangeAll, domain.RangeThisMonth, domain.RangeLastMonth, domain.RangeLast30,
		domain.RangeLast90, domain.RangeThisYear, domain.RangeCustom:
	default:
		return c, fmt.Errorf("%w: unknown date range %q", apperrors.ErrValidation, p.Range)
	}
	c.DateRange.Preset = preset

	if preset == domain.RangeCustom {
		var err error
		if c.DateRange.Start, err = parseDay(p.Start, "start"); err != nil {
			return c, err
		}
		if c.DateRange.End, err = parseDay(p.End, "end"); err != nil {
			return c, err
		}
		if c.DateRange.Start != nil && c.DateRange.End != nil && c.DateRange.Start.After(*c.DateRange.End) {
			return c, fmt.Errorf("%w: start must not be after end", apperrors.ErrValidation)
		}
	}

	var err error
	if c.MinAmount, err = parseBound(p.MinAmount, "minAmount"); err != nil {
		return c, err
	}
	if c.MaxAmount, err = parseBound(p.MaxAmount, "maxAmount"); err != nil {
		return c, err
	}
	return c, nil
}

func parseDay(s, field string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", apperrors.ErrValidation, field)
	}
	return &t, nil
}

func parseBound(s, field string) (*decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, field)
	}
	return &d, nil
}
