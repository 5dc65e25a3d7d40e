package domain

// Account is a read-only reference to a store-owned account.
type Account struct {
	AccountID    string `json:"accountID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
}

// Category is a read-only reference to a store-owned category.
type Category struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Kind       TransactionKind `json:"kind"`
}

// Lookups resolves account and category IDs to display names.
// The zero value resolves nothing.
type Lookups struct {
	accounts   map[string]Account
	categories map[string]Category
}

// NewLookups indexes the given accounts and categories by ID.
func NewLookups(accounts []Account, categories []Category) Lookups {
	l := Lookups{
		accounts:   make(map[string]Account, len(accounts)),
		categories: make(map[string]Category, len(categories)),
	}
	for _, a := range accounts {
		l.accounts[a.AccountID] = a
	}
	for _, c := range categories {
		l.categories[c.CategoryID] = c
	}
	return l
}

// AccountName returns the account's name, or "" when unknown.
func (l Lookups) AccountName(id string) string {
	return l.accounts[id].Name
}

// CategoryName returns the category's name, or "" when unknown.
func (l Lookups) CategoryName(id string) string {
	return l.categories[id].Name
}

// HasAccount reports whether id refers to a known account.
func (l Lookups) HasAccount(id string) bool {
	_, ok := l.accounts[id]
	return ok
}

// CategoryByName finds a category by case-sensitive name within a kind.
func (l Lookups) CategoryByName(name string, kind TransactionKind) (Category, bool) {
	for _, c := range l.categories {
		if c.Name == name && (c.Kind == "" || c.Kind == kind) {
			return c, true
		}
	}
	return Category{}, false
}
