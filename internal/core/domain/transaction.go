package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionKind distinguishes expense, income and investment records.
type TransactionKind string

const (
	KindExpense    TransactionKind = "expense"
	KindIncome     TransactionKind = "income"
	KindInvestment TransactionKind = "investment"
)

// Valid reports whether k is one of the known kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindExpense, KindIncome, KindInvestment:
		return true
	}
	return false
}

// ParseTransactionKind converts user input into a TransactionKind.
func ParseTransactionKind(s string) (TransactionKind, error) {
	k := TransactionKind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, s)
	}
	return k, nil
}

// InvestmentDetails holds the fields that only exist on investment records.
type InvestmentDetails struct {
	AssetSymbol string          `json:"assetSymbol"`
	Units       decimal.Decimal `json:"units"`
}

// Transaction is one financial event.
//
// A record with NextDate set is both a real event on Date and the template for
// exactly one projected future occurrence on NextDate. Investment is present
// only when Kind is KindInvestment.
type Transaction struct {
	ID           string             `json:"id"`
	AccountID    string             `json:"accountID"`
	CategoryID   string             `json:"categoryID"`
	Kind         TransactionKind    `json:"kind"`
	AmountMinor  int64              `json:"amountMinor"`
	CurrencyCode string             `json:"currencyCode"`
	Date         time.Time          `json:"date"`
	NextDate     *time.Time         `json:"nextDate,omitempty"`
	Description  string             `json:"description"`
	Notes        string             `json:"notes"`
	Tags         []string           `json:"tags"`
	Investment   *InvestmentDetails `json:"investment,omitempty"`
	AuditFields
}

// IsRecurring reports whether the record declares a pending next occurrence.
func (t Transaction) IsRecurring() bool {
	return t.NextDate != nil
}

// Clone returns a deep copy so callers can mutate the result freely.
func (t Transaction) Clone() Transaction {
	c := t
	if t.NextDate != nil {
		nd := *t.NextDate
		c.NextDate = &nd
	}
	if t.Tags != nil {
		c.Tags = append(make([]string, 0, len(t.Tags)), t.Tags...)
	}
	if t.Investment != nil {
		inv := *t.Investment
		c.Investment = &inv
	}
	return c
}

// Validate checks the invariants every stored record must satisfy.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.AccountID) == "" {
		return fmt.Errorf("%w: account", apperrors.ErrMissingRequiredField)
	}
	if strings.TrimSpace(t.CategoryID) == "" {
		return fmt.Errorf("%w: category", apperrors.ErrMissingRequiredField)
	}
	if !t.Kind.Valid() {
		return fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, t.Kind)
	}
	if len(t.CurrencyCode) != 3 || strings.ToUpper(t.CurrencyCode) != t.CurrencyCode {
		return fmt.Errorf("%w: currency code must be 3 upper-case letters", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date", apperrors.ErrMissingRequiredField)
	}
	if t.NextDate != nil && !AfterDay(*t.NextDate, t.Date) {
		return fmt.Errorf("%w: next date must be after the occurrence date", apperrors.ErrValidation)
	}
	switch {
	case t.Kind == KindInvestment && t.Investment == nil:
		return fmt.Errorf("%w: investment details", apperrors.ErrMissingRequiredField)
	case t.Kind == KindInvestment && strings.TrimSpace(t.Investment.AssetSymbol) == "":
		return fmt.Errorf("%w: asset symbol", apperrors.ErrMissingRequiredField)
	case t.Kind != KindInvestment && t.Investment != nil:
		return fmt.Errorf("%w: investment details on a %s record", apperrors.ErrValidation, t.Kind)
	}
	return nil
}

// TransactionPatch describes a partial update. Nil fields are left untouched.
// ClearNextDate sets NextDate to absent and wins over NextDate.
type TransactionPatch struct {
	AccountID     *string
	CategoryID    *string
	AmountMinor   *int64
	Date          *time.Time
	NextDate      *time.Time
	ClearNextDate bool
	Description   *string
	Notes         *string
	Tags          *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p TransactionPatch) IsEmpty() bool {
	return p.AccountID == nil && p.CategoryID == nil && p.AmountMinor == nil && p.Date == nil &&
		p.NextDate == nil && !p.ClearNextDate && p.Description == nil && p.Notes == nil && p.Tags == nil
}

// ApplyTo returns a copy of t with the patch applied.
func (p TransactionPatch) ApplyTo(t Transaction) Transaction {
	out := t.Clone()
	if p.AccountID != nil {
		out.AccountID = *p.AccountID
	}
	if p.CategoryID != nil {
		out.CategoryID = *p.CategoryID
	}
	if p.AmountMinor != nil {
		out.AmountMinor = *p.AmountMinor
	}
	if p.Date != nil {
		out.Date = DayOf(*p.Date)
	}
	if p.NextDate != nil {
		nd := DayOf(*p.NextDate)
		out.NextDate = &nd
	}
	if p.ClearNextDate {
		out.NextDate = nil
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Tags != nil {
		out.Tags = append([]string{}, (*p.Tags)...)
	}
	return out
}
