package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/filtering"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/projection"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/money"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo    portsrepo.TransactionRepositoryFacade
	lookupRepo portsrepo.LookupReader
	parser     portssvc.SuggestionParser
	validate   *validator.Validate
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithLookupReader enables account checks and category name resolution.
func WithLookupReader(reader portsrepo.LookupReader) TransactionServiceOption {
	return func(s *transactionService) {
		s.lookupRepo = reader
	}
}

// WithSuggestionParser enables AutoAdd.
func WithSuggestionParser(parser portssvc.SuggestionParser) TransactionServiceOption {
	return func(s *transactionService) {
		s.parser = parser
	}
}

// WithTransactionPublisher adds the change event publisher
func WithTransactionPublisher(publisher portssvc.ChangePublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.Publisher = publisher
	}
}

// WithTransactionClock overrides the clock used to split settled and upcoming records
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:  repo,
		validate: newRequestValidator(),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest maps validator failures onto the application's error sentinels.
func (s *transactionService) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return fmt.Errorf("%w: %s", apperrors.ErrMissingRequiredField, fe.Field())
		}
		return fmt.Errorf("%w: %s failed %q", apperrors.ErrValidation, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		}
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	if !s.OwnsRecord(ctx, *txn) {
		return nil, fmt.Errorf("transaction %s: %w", transactionID, apperrors.ErrNotFound)
	}
	return txn, nil
}

// buildTransaction turns a create request into a validated record. Nothing here touches the store.
func (s *transactionService) buildTransaction(kind domain.TransactionKind, req dto.CreateTransactionRequest, lookups *domain.Lookups, creatorUserID string) (domain.Transaction, error) {
	if !kind.Valid() {
		return domain.Transaction{}, fmt.Errorf("%w: unknown transaction kind %q", apperrors.ErrValidation, kind)
	}
	if err := s.validateRequest(req); err != nil {
		return domain.Transaction{}, err
	}

	amount, err := money.ToMinor(req.Amount, req.CurrencyCode)
	if err != nil {
		return domain.Transaction{}, err
	}

	if lookups != nil && !lookups.HasAccount(req.AccountID) {
		return domain.Transaction{}, fmt.Errorf("%w: unknown account %q", apperrors.ErrValidation, req.AccountID)
	}

	now := s.Now()
	txn := domain.Transaction{
		AccountID:    req.AccountID,
		CategoryID:   req.CategoryID,
		Kind:         kind,
		AmountMinor:  amount,
		CurrencyCode: req.CurrencyCode,
		Date:         domain.DayOf(*req.Date),
		Description:  strings.TrimSpace(req.Description),
		Notes:        req.Notes,
		Tags:         req.Tags,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if txn.Tags == nil {
		txn.Tags = []string{}
	}
	if req.NextDate != nil {
		nd := domain.DayOf(*req.NextDate)
		txn.NextDate = &nd
	}
	if kind == domain.KindInvestment {
		units := decimal.Zero
		if strings.TrimSpace(req.Units) != "" {
			units, err = decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(req.Units), ",", "."))
			if err != nil {
				return domain.Transaction{}, fmt.Errorf("%w: units must be a decimal number", apperrors.ErrValidation)
			}
		}
		txn.Investment = &domain.InvestmentDetails{AssetSymbol: strings.ToUpper(strings.TrimSpace(req.AssetSymbol)), Units: units}
	}

	if err := txn.Validate(); err != nil {
		return domain.Transaction{}, err
	}
	return txn, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, kind domain.TransactionKind, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	var lookups *domain.Lookups
	if s.lookupRepo != nil {
		l, err := loadLookups(ctx, s.lookupRepo, &kind)
		if err != nil {
			s.LogError(ctx, err, "Failed to load lookups for create")
			return nil, fmt.Errorf("failed to create transaction in service: %w", err)
		}
		lookups = &l
	}
	return s.create(ctx, kind, req, lookups, creatorUserID)
}

func (s *transactionService) create(ctx context.Context, kind domain.TransactionKind, req dto.CreateTransactionRequest, lookups *domain.Lookups, creatorUserID string) (*domain.Transaction, error) {
	txn, err := s.buildTransaction(kind, req, lookups, creatorUserID)
	if err != nil {
		s.LogDebug(ctx, "Rejected create transaction request", slog.String("error", err.Error()))
		return nil, err
	}

	created, err := s.txnRepo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction",
			slog.String("account_id", txn.AccountID),
			slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", created.ID),
		slog.String("kind", string(kind)))
	s.PublishChange(ctx, domain.ChangeCreated, kind, creatorUserID, created.ID)
	return created, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error) {
	existing, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	patch := domain.TransactionPatch{
		AccountID:     req.AccountID,
		CategoryID:    req.CategoryID,
		Date:          req.Date,
		NextDate:      req.NextDate,
		ClearNextDate: req.ClearNextDate,
		Description:   req.Description,
		Notes:         req.Notes,
		Tags:          req.Tags,
	}
	if req.Amount != nil {
		minor, err := money.ToMinor(*req.Amount, existing.CurrencyCode)
		if err != nil {
			return nil, err
		}
		patch.AmountMinor = &minor
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: no fields to update", apperrors.ErrValidation)
	}
	if err := patch.ApplyTo(*existing).Validate(); err != nil {
		return nil, err
	}

	updated, err := s.txnRepo.UpdateTransaction(ctx, transactionID, patch, requestingUserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}

	s.PublishChange(ctx, domain.ChangeUpdated, updated.Kind, requestingUserID, updated.ID)
	return updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error {
	existing, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction in service: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	s.PublishChange(ctx, domain.ChangeDeleted, existing.Kind, requestingUserID, transactionID)
	return nil
}

func (s *transactionService) ListSettled(ctx context.Context, kind domain.TransactionKind, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	criteria, err := params.ToCriteria()
	if err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	records, err := s.txnRepo.ListTransactions(ctx, &kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	records = s.OwnedRecords(ctx, records)
	lookups, err := loadLookups(ctx, s.lookupRepo, &kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lookups")
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}

	today := s.Now()
	settled := filtering.Apply(projection.Settled(records, today), criteria, lookups, today)
	SortNewestFirst(settled)

	start := 0
	if params.NextToken != nil && *params.NextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		start = sort.Search(len(settled), func(i int) bool {
			return comesAfter(settled[i], afterDate, afterID)
		})
	}

	end := start + limit
	if end > len(settled) {
		end = len(settled)
	}
	page := settled[start:end]

	res := &dto.ListTransactionsResponse{Transactions: dto.ToListTransactionResponse(page)}
	if end < len(settled) && len(page) > 0 {
		last := page[len(page)-1]
		token := pagination.EncodeToken(domain.DayOf(last.Date), last.ID)
		res.NextToken = &token
	}
	return res, nil
}

// SortNewestFirst orders records by day descending, then ID ascending.
func SortNewestFirst(records []domain.Transaction) {
	sort.SliceStable(records, func(i, j int) bool {
		di, dj := domain.DayOf(records[i].Date), domain.DayOf(records[j].Date)
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return records[i].ID < records[j].ID
	})
}

// comesAfter reports whether t sorts strictly after the (day, id) cursor in SortNewestFirst order.
func comesAfter(t domain.Transaction, day time.Time, id string) bool {
	d := domain.DayOf(t.Date)
	if !d.Equal(domain.DayOf(day)) {
		return d.Before(domain.DayOf(day))
	}
	return t.ID > id
}

func (s *transactionService) AutoAdd(ctx context.Context, kind domain.TransactionKind, req dto.AutoAddRequest, creatorUserID string) (*dto.AutoAddResponse, error) {
	if s.parser == nil {
		return nil, fmt.Errorf("auto add: %w", apperrors.ErrFeatureDisabled)
	}

	suggestions, err := s.parser.ParseSuggestions(ctx, req.Text)
	if err != nil {
		s.LogError(ctx, err, "Failed to parse auto add text")
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	lookups, err := loadLookups(ctx, s.lookupRepo, &kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to load lookups for auto add")
		return nil, fmt.Errorf("failed to auto add in service: %w", err)
	}
	var check *domain.Lookups
	if s.lookupRepo != nil {
		check = &lookups
	}

	today := domain.DayOf(s.Now())
	res := &dto.AutoAddResponse{Created: []dto.TransactionResponse{}, Rejected: []dto.AutoAddRejection{}}
	for i, suggestion := range suggestions {
		draft := dto.CreateTransactionRequest{
			AccountID:    req.AccountID,
			CategoryID:   req.DefaultCategoryID,
			CurrencyCode: strings.ToUpper(req.CurrencyCode),
			Date:         &today,
			Tags:         []string{},
		}
		draft.ApplySuggestion(suggestion, lookups, kind)

		created, err := s.create(ctx, kind, draft, check, creatorUserID)
		if err != nil {
			res.Rejected = append(res.Rejected, dto.AutoAddRejection{Index: i, Error: err.Error()})
			continue
		}
		res.Created = append(res.Created, dto.ToTransactionResponse(created))
	}

	s.LogInfo(ctx, "Auto add finished",
		slog.Int("suggestions", len(suggestions)),
		slog.Int("created", len(res.Created)))
	return res, nil
}
