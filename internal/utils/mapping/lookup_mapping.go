package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		Name:         m.Name,
		CurrencyCode: m.CurrencyCode,
	}
}

func ToDomainAccounts(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}

func ToDomainCategory(m models.Category) domain.Category {
	c := domain.Category{CategoryID: m.CategoryID, Name: m.Name}
	if m.Kind != nil {
		c.Kind = domain.TransactionKind(*m.Kind)
	}
	return c
}

func ToDomainCategories(ms []models.Category) []domain.Category {
	out := make([]domain.Category, len(ms))
	for i, m := range ms {
		out[i] = ToDomainCategory(m)
	}
	return out
}
