package money

import (
	"math"
	"testing"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecision(t *testing.T) {
	assert.Equal(t, 0, Precision("JPY"))
	assert.Equal(t, 0, Precision("krw"))
	assert.Equal(t, 3, Precision("KWD"))
	assert.Equal(t, 2, Precision("USD"))
	assert.Equal(t, 2, Precision("XXX"))

	assert.Equal(t, int64(1), MinorUnitsPerMajor("JPY"))
	assert.Equal(t, int64(100), MinorUnitsPerMajor("EUR"))
	assert.Equal(t, int64(1000), MinorUnitsPerMajor("BHD"))
}

func TestToMinor(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		currency string
		want     int64
		wantErr  bool
	}{
		{name: "comma separator", text: "12,50", currency: "EUR", want: 1250},
		{name: "dot separator", text: "12.50", currency: "EUR", want: 1250},
		{name: "whole yen", text: "100", currency: "JPY", want: 100},
		{name: "yen rounds half away from zero", text: "100.5", currency: "JPY", want: 101},
		{name: "three decimals", text: "1.234", currency: "KWD", want: 1234},
		{name: "three decimals rounds", text: "1.0005", currency: "KWD", want: 1001},
		{name: "half up", text: "1.005", currency: "USD", want: 101},
		{name: "negative half away from zero", text: "-1.005", currency: "USD", want: -101},
		{name: "surrounding spaces", text: "  2.5 ", currency: "USD", want: 250},
		{name: "leading dot", text: ".5", currency: "USD", want: 50},
		{name: "explicit plus", text: "+3", currency: "USD", want: 300},
		{name: "zero", text: "0", currency: "USD", want: 0},
		{name: "letters", text: "abc", currency: "USD", wantErr: true},
		{name: "two separators", text: "1.2.3", currency: "USD", wantErr: true},
		{name: "thousands and decimal", text: "1,234.56", currency: "USD", wantErr: true},
		{name: "empty", text: "", currency: "USD", wantErr: true},
		{name: "currency symbol", text: "$5", currency: "USD", wantErr: true},
		{name: "overflow", text: "99999999999999999999", currency: "USD", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinor(tt.text, tt.currency)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToMajor(t *testing.T) {
	assert.Equal(t, "12.50", ToMajor(1250, "EUR"))
	assert.Equal(t, "100", ToMajor(100, "JPY"))
	assert.Equal(t, "1.234", ToMajor(1234, "KWD"))
	assert.Equal(t, "0.05", ToMajor(5, "USD"))
	assert.Equal(t, "-0.05", ToMajor(-5, "USD"))
	assert.Equal(t, "0.000", ToMajor(0, "OMR"))
}

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 5, 99, 100, 1250, -98765, 123456789, math.MaxInt64, math.MinInt64}
	for _, currency := range []string{"JPY", "USD", "KWD"} {
		for _, m := range values {
			got, err := ToMinor(ToMajor(m, currency), currency)
			require.NoError(t, err, "%d %s", m, currency)
			assert.Equal(t, m, got, "%d %s", m, currency)
		}
	}
}

func TestToDecimalAndBack(t *testing.T) {
	d := ToDecimal(1250, "EUR")
	assert.True(t, d.Equal(decimal.RequireFromString("12.5")))

	minor, err := FromDecimal(decimal.RequireFromString("12.345"), "EUR")
	require.NoError(t, err)
	assert.Equal(t, int64(1235), minor)
}

func TestCurrencies(t *testing.T) {
	list := Currencies()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].CurrencyCode, list[i].CurrencyCode)
	}
	assert.True(t, IsKnown("jpy"))
	assert.True(t, IsKnown("USD"))
	assert.False(t, IsKnown("ZZZ"))
}
