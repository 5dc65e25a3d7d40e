// Package cache decorates store ports with in-process caches.
package cache

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	accountsKey      = "accounts"
	allCategoriesKey = "categories:*"
)

// LookupReader caches account and category listings of an underlying reader.
// Entries expire after the configured TTL; errors are never cached.
type LookupReader struct {
	next       portsrepo.LookupReader
	accounts   *expirable.LRU[string, []domain.Account]
	categories *expirable.LRU[string, []domain.Category]
}

var _ portsrepo.LookupReader = (*LookupReader)(nil)

// NewLookupReader wraps next with caches holding at most size entries each.
func NewLookupReader(next portsrepo.LookupReader, size int, ttl time.Duration) *LookupReader {
	return &LookupReader{
		next:       next,
		accounts:   expirable.NewLRU[string, []domain.Account](size, nil, ttl),
		categories: expirable.NewLRU[string, []domain.Category](size, nil, ttl),
	}
}

func (c *LookupReader) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if cached, ok := c.accounts.Get(accountsKey); ok {
		return append([]domain.Account(nil), cached...), nil
	}
	accounts, err := c.next.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	c.accounts.Add(accountsKey, append([]domain.Account(nil), accounts...))
	return accounts, nil
}

func (c *LookupReader) ListCategories(ctx context.Context, kind *domain.TransactionKind) ([]domain.Category, error) {
	key := allCategoriesKey
	if kind != nil {
		key = "categories:" + string(*kind)
	}
	if cached, ok := c.categories.Get(key); ok {
		return append([]domain.Category(nil), cached...), nil
	}
	categories, err := c.next.ListCategories(ctx, kind)
	if err != nil {
		return nil, err
	}
	c.categories.Add(key, append([]domain.Category(nil), categories...))
	return categories, nil
}

// Purge drops every cached listing.
func (c *LookupReader) Purge() {
	c.accounts.Purge()
	c.categories.Purge()
}
