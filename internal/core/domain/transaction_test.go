package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func validExpense() domain.Transaction {
	return domain.Transaction{
		ID:           "txn_1",
		AccountID:    "acc_1",
		CategoryID:   "cat_1",
		Kind:         domain.KindExpense,
		AmountMinor:  5000,
		CurrencyCode: "USD",
		Date:         time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Tags:         []string{},
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr error
	}{
		{name: "valid expense", mutate: func(tx *domain.Transaction) {}},
		{
			name:   "valid recurring expense",
			mutate: func(tx *domain.Transaction) { tx.NextDate = timePtr(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)) },
		},
		{
			name:    "missing account",
			mutate:  func(tx *domain.Transaction) { tx.AccountID = " " },
			wantErr: apperrors.ErrMissingRequiredField,
		},
		{
			name:    "missing category",
			mutate:  func(tx *domain.Transaction) { tx.CategoryID = "" },
			wantErr: apperrors.ErrMissingRequiredField,
		},
		{
			name:    "lower-case currency",
			mutate:  func(tx *domain.Transaction) { tx.CurrencyCode = "usd" },
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "next date not after date",
			mutate:  func(tx *domain.Transaction) { tx.NextDate = timePtr(tx.Date) },
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "investment without details",
			mutate:  func(tx *domain.Transaction) { tx.Kind = domain.KindInvestment },
			wantErr: apperrors.ErrMissingRequiredField,
		},
		{
			name: "investment with details",
			mutate: func(tx *domain.Transaction) {
				tx.Kind = domain.KindInvestment
				tx.Investment = &domain.InvestmentDetails{AssetSymbol: "VWCE", Units: decimal.RequireFromString("1.5")}
			},
		},
		{
			name: "expense carrying investment details",
			mutate: func(tx *domain.Transaction) {
				tx.Investment = &domain.InvestmentDetails{AssetSymbol: "VWCE"}
			},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validExpense()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransactionPatch_ApplyTo(t *testing.T) {
	tx := validExpense()
	tx.NextDate = timePtr(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC))

	desc := "rent"
	patched := domain.TransactionPatch{Description: &desc, ClearNextDate: true}.ApplyTo(tx)

	assert.Equal(t, "rent", patched.Description)
	assert.Nil(t, patched.NextDate)
	require.NotNil(t, tx.NextDate, "original must not be mutated")
	assert.True(t, domain.TransactionPatch{}.IsEmpty())
}

func TestParseTransactionKind(t *testing.T) {
	k, err := domain.ParseTransactionKind(" Income ")
	require.NoError(t, err)
	assert.Equal(t, domain.KindIncome, k)

	_, err = domain.ParseTransactionKind("transfer")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransaction_Clone(t *testing.T) {
	t.Run("empty tags stay an empty list", func(t *testing.T) {
		c := validExpense().Clone()
		require.NotNil(t, c.Tags)
		assert.Empty(t, c.Tags)
	})

	t.Run("nil tags stay nil", func(t *testing.T) {
		tx := validExpense()
		tx.Tags = nil
		assert.Nil(t, tx.Clone().Tags)
	})

	t.Run("copies do not share state", func(t *testing.T) {
		tx := validExpense()
		tx.Tags = []string{"food"}
		tx.NextDate = timePtr(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
		tx.Kind = domain.KindInvestment
		tx.Investment = &domain.InvestmentDetails{AssetSymbol: "VWCE", Units: decimal.RequireFromString("1.5")}

		c := tx.Clone()
		c.Tags[0] = "rent"
		*c.NextDate = c.NextDate.AddDate(0, 1, 0)
		c.Investment.AssetSymbol = "SPY"

		assert.Equal(t, "food", tx.Tags[0])
		assert.Equal(t, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), *tx.NextDate)
		assert.Equal(t, "VWCE", tx.Investment.AssetSymbol)
	})
}
