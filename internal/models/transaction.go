package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the persisted form of domain.TransactionKind.
type TransactionKind string

// Transaction represents one row of the transactions table.
// AssetSymbol and Units are only populated for investment rows.
type Transaction struct {
	TransactionID string              `db:"transaction_id"`
	AccountID     string              `db:"account_id"`
	CategoryID    string              `db:"category_id"`
	Kind          TransactionKind     `db:"kind"`
	AmountMinor   int64               `db:"amount_minor"`
	CurrencyCode  string              `db:"currency_code"`
	TxnDate       time.Time           `db:"txn_date"`
	NextDate      *time.Time          `db:"next_date"`
	Description   string              `db:"description"`
	Notes         string              `db:"notes"`
	Tags          []string            `db:"tags"`
	AssetSymbol   *string             `db:"asset_symbol"`
	Units         decimal.NullDecimal `db:"units"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
	DeletedBy *string    `db:"deleted_by"`
}
