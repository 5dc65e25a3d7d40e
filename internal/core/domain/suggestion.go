package domain

import "time"

// Suggestion is the untrusted, partial output of a receipt/QR/free-text parser.
// Every field is optional; a suggestion is only ever merged into a draft that
// then goes through the normal create validation.
type Suggestion struct {
	Amount       *string    `json:"amount,omitempty"` // major-unit text, as written
	CurrencyCode *string    `json:"currencyCode,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Description  *string    `json:"description,omitempty"`
	CategoryName *string    `json:"categoryName,omitempty"`
}
