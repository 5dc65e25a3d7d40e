package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/money"
)

// CreateTransactionRequest defines the data needed to create a new record.
// Amount is major-unit text exactly as entered ("12,50"); it is converted to
// minor units by the service.
type CreateTransactionRequest struct {
	AccountID    string     `json:"accountID" validate:"required"`
	CategoryID   string     `json:"categoryID" validate:"required"`
	Amount       string     `json:"amount" validate:"required"`
	CurrencyCode string     `json:"currencyCode" validate:"required,len=3,uppercase"`
	Date         *time.Time `json:"date" validate:"required"`
	NextDate     *time.Time `json:"nextDate"` // Optional: schedules one projected occurrence
	Description  string     `json:"description" validate:"max=500"`
	Notes        string     `json:"notes" validate:"max=2000"`
	Tags         []string   `json:"tags" validate:"dive,required,max=50"`
	AssetSymbol  string     `json:"assetSymbol"` // investment only
	Units        string     `json:"units"`       // investment only, decimal text
}

// ApplySuggestion merges the fields present in s into the draft. A category
// name is only taken over when it names a known category of kind.
func (r *CreateTransactionRequest) ApplySuggestion(s domain.Suggestion, lookups domain.Lookups, kind domain.TransactionKind) {
	if s.Amount != nil && strings.TrimSpace(*s.Amount) != "" {
		r.Amount = strings.TrimSpace(*s.Amount)
	}
	if s.CurrencyCode != nil && strings.TrimSpace(*s.CurrencyCode) != "" {
		r.CurrencyCode = strings.ToUpper(strings.TrimSpace(*s.CurrencyCode))
	}
	if s.Date != nil {
		d := domain.DayOf(*s.Date)
		r.Date = &d
	}
	if s.Description != nil {
		r.Description = strings.TrimSpace(*s.Description)
	}
	if s.CategoryName != nil {
		if c, ok := lookups.CategoryByName(strings.TrimSpace(*s.CategoryName), kind); ok {
			r.CategoryID = c.CategoryID
		}
	}
}

// UpdateTransactionRequest defines the data allowed for updating a record.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	AccountID     *string    `json:"accountID"`
	CategoryID    *string    `json:"categoryID"`
	Amount        *string    `json:"amount"` // major-unit text in the record's currency
	Date          *time.Time `json:"date"`
	NextDate      *time.Time `json:"nextDate"`
	ClearNextDate bool       `json:"clearNextDate"`
	Description   *string    `json:"description"`
	Notes         *string    `json:"notes"`
	Tags          *[]string  `json:"tags"`
}

// InvestmentResponse mirrors domain.InvestmentDetails.
type InvestmentResponse struct {
	AssetSymbol string `json:"assetSymbol"`
	Units       string `json:"units"`
}

// TransactionResponse defines the data returned for a record.
type TransactionResponse struct {
	ID            string              `json:"id"`
	AccountID     string              `json:"accountID"`
	CategoryID    string              `json:"categoryID"`
	Kind          string              `json:"kind"`
	AmountMinor   int64               `json:"amountMinor"`
	Amount        string              `json:"amount"`
	CurrencyCode  string              `json:"currencyCode"`
	Date          string              `json:"date"`
	NextDate      *string             `json:"nextDate"`
	Description   string              `json:"description"`
	Notes         string              `json:"notes"`
	Tags          []string            `json:"tags"`
	Investment    *InvestmentResponse `json:"investment,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy string              `json:"lastUpdatedBy"`
}

// DateLayout is the wire format of calendar days.
const DateLayout = "2006-01-02"

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		ID:            t.ID,
		AccountID:     t.AccountID,
		CategoryID:    t.CategoryID,
		Kind:          string(t.Kind),
		AmountMinor:   t.AmountMinor,
		Amount:        money.ToMajor(t.AmountMinor, t.CurrencyCode),
		CurrencyCode:  t.CurrencyCode,
		Date:          t.Date.UTC().Format(DateLayout),
		Description:   t.Description,
		Notes:         t.Notes,
		Tags:          t.Tags,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	if t.NextDate != nil {
		nd := t.NextDate.UTC().Format(DateLayout)
		res.NextDate = &nd
	}
	if t.Investment != nil {
		res.Investment = &InvestmentResponse{AssetSymbol: t.Investment.AssetSymbol, Units: t.Investment.Units.String()}
	}
	return res
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing settled records.
type ListTransactionsParams struct {
	FilterParams
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a page of records.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
