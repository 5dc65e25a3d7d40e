package domain

// Currency represents a supported currency together with its minor-unit precision.
// Precision comes from a static table and never changes at runtime.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	Precision    int    `json:"precision"`    // number of fractional digits: 0, 2 or 3
}
