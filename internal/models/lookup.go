package models

// Account represents a row of the accounts table.
type Account struct {
	AccountID    string `db:"account_id"`
	Name         string `db:"name"`
	CurrencyCode string `db:"currency_code"`
}

// Category represents a row of the categories table. Kind is empty for
// categories shared by every kind.
type Category struct {
	CategoryID string  `db:"category_id"`
	Name       string  `db:"name"`
	Kind       *string `db:"kind"`
}
