// Package money converts between integer minor units and user-facing major-unit text.
// Amounts are never held in binary floating point.
package money

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

const defaultPrecision = 2

// precisions lists the currencies whose minor unit is not 1/100.
var precisions = map[string]int{
	"JPY": 0,
	"KRW": 0,
	"CLP": 0,
	"VND": 0,
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"OMR": 3,
	"TND": 3,
}

// common currencies offered by the currency endpoint alongside the table above
var commonCurrencies = []string{"USD", "EUR", "GBP", "INR", "CHF", "CAD", "AUD", "SEK", "NOK", "PLN"}

var amountPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// Precision returns the number of fractional digits of the currency's minor unit.
// Unknown codes fall back to 2.
func Precision(currencyCode string) int {
	if p, ok := precisions[strings.ToUpper(currencyCode)]; ok {
		return p
	}
	return defaultPrecision
}

// MinorUnitsPerMajor returns 10^Precision(currencyCode).
func MinorUnitsPerMajor(currencyCode string) int64 {
	n := int64(1)
	for i := 0; i < Precision(currencyCode); i++ {
		n *= 10
	}
	return n
}

// ToMinor parses user-entered major-unit text into minor units.
// Either "." or "," is accepted as the decimal separator, rounding is half away from zero.
// Example: "12,50" EUR returns 1250, "100" JPY returns 100, "1.0005" KWD returns 1001.
func ToMinor(text, currencyCode string) (int64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if !amountPattern.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, text)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, text)
	}
	return FromDecimal(d, currencyCode)
}

// FromDecimal converts a major-unit decimal into minor units, rounding half away from zero.
func FromDecimal(major decimal.Decimal, currencyCode string) (int64, error) {
	minor := major.Shift(int32(Precision(currencyCode))).Round(0)
	if minor.GreaterThan(maxInt64) || minor.LessThan(minInt64) {
		return 0, fmt.Errorf("%w: %s overflows", apperrors.ErrInvalidAmount, major.String())
	}
	return minor.IntPart(), nil
}

// ToDecimal returns the exact major-unit value of minor.
func ToDecimal(minor int64, currencyCode string) decimal.Decimal {
	return decimal.New(minor, -int32(Precision(currencyCode)))
}

// ToMajor formats minor units with exactly Precision(currencyCode) fractional digits.
// Example: 1250 EUR returns "12.50", 100 JPY returns "100".
func ToMajor(minor int64, currencyCode string) string {
	return FormatWithPrecision(ToDecimal(minor, currencyCode), Precision(currencyCode))
}

// FormatWithPrecision rounds an arbitrary decimal to the given number of fractional digits.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// Currencies lists the currencies with known precision, sorted by code.
func Currencies() []domain.Currency {
	seen := make(map[string]struct{}, len(precisions)+len(commonCurrencies))
	out := make([]domain.Currency, 0, len(precisions)+len(commonCurrencies))
	add := func(code string) {
		if _, ok := seen[code]; ok {
			return
		}
		seen[code] = struct{}{}
		out = append(out, domain.Currency{CurrencyCode: code, Precision: Precision(code)})
	}
	for code := range precisions {
		add(code)
	}
	for _, code := range commonCurrencies {
		add(code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out
}

// IsKnown reports whether currencyCode appears in Currencies.
func IsKnown(currencyCode string) bool {
	code := strings.ToUpper(currencyCode)
	if _, ok := precisions[code]; ok {
		return true
	}
	for _, c := range commonCurrencies {
		if c == code {
			return true
		}
	}
	return false
}
