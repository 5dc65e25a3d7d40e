package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/utils/money"
)

// CurrencyService serves the static currency precision table.
type CurrencyService struct {
	BaseService
}

func NewCurrencyService() *CurrencyService {
	return &CurrencyService{}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if !money.IsKnown(code) {
		return nil, fmt.Errorf("currency %q: %w", code, apperrors.ErrNotFound)
	}
	return &domain.Currency{CurrencyCode: code, Precision: money.Precision(code)}, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return money.Currencies(), nil
}
