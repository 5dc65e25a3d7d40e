package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction to its row form.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.ID,
		AccountID:     d.AccountID,
		CategoryID:    d.CategoryID,
		Kind:          models.TransactionKind(d.Kind),
		AmountMinor:   d.AmountMinor,
		CurrencyCode:  d.CurrencyCode,
		TxnDate:       domain.DayOf(d.Date),
		Description:   d.Description,
		Notes:         d.Notes,
		Tags:          d.Tags,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if m.Tags == nil {
		m.Tags = []string{}
	}
	if d.NextDate != nil {
		nd := domain.DayOf(*d.NextDate)
		m.NextDate = &nd
	}
	if d.Investment != nil {
		symbol := d.Investment.AssetSymbol
		m.AssetSymbol = &symbol
		m.Units = decimal.NullDecimal{Decimal: d.Investment.Units, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a row to a domain Transaction. Dates come back
// from DATE columns and are normalized to UTC midnight.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		ID:           m.TransactionID,
		AccountID:    m.AccountID,
		CategoryID:   m.CategoryID,
		Kind:         domain.TransactionKind(m.Kind),
		AmountMinor:  m.AmountMinor,
		CurrencyCode: m.CurrencyCode,
		Date:         domain.DayOf(m.TxnDate),
		Description:  m.Description,
		Notes:        m.Notes,
		Tags:         m.Tags,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
	if d.Tags == nil {
		d.Tags = []string{}
	}
	if m.NextDate != nil {
		nd := domain.DayOf(*m.NextDate)
		d.NextDate = &nd
	}
	if d.Kind == domain.KindInvestment {
		inv := &domain.InvestmentDetails{}
		if m.AssetSymbol != nil {
			inv.AssetSymbol = *m.AssetSymbol
		}
		if m.Units.Valid {
			inv.Units = m.Units.Decimal
		}
		d.Investment = inv
	}
	return d
}

// ToDomainTransactions converts a slice of rows.
func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
