package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/projection"
)

// ReconciliationService promotes and dismisses upcoming occurrences.
//
// A promotion is two store writes: create the new record, then clear the
// parent's next date. They are not atomic. If the second write fails the new
// record exists while the parent still projects the same occurrence; the
// projection's dedup hides that duplicate until the user retries.
type ReconciliationService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
}

// ReconciliationServiceOption is a functional option for configuring the reconciliation service
type ReconciliationServiceOption func(*ReconciliationService)

// WithReconciliationPublisher adds the change event publisher
func WithReconciliationPublisher(publisher portssvc.ChangePublisher) ReconciliationServiceOption {
	return func(s *ReconciliationService) {
		s.Publisher = publisher
	}
}

// WithReconciliationClock overrides the clock used to project occurrences
func WithReconciliationClock(clock func() time.Time) ReconciliationServiceOption {
	return func(s *ReconciliationService) {
		s.Clock = clock
	}
}

// NewReconciliationService creates a new reconciliation service with the provided options
func NewReconciliationService(repo portsrepo.TransactionRepositoryFacade, options ...ReconciliationServiceOption) *ReconciliationService {
	svc := &ReconciliationService{txnRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReconciliationSvc = (*ReconciliationService)(nil)

var staleResult = domain.ReconciliationResult{Stale: true}

// currentParent re-reads the parent of a virtual occurrence and checks that it still
// projects that occurrence. It returns apperrors.ErrStaleProjection otherwise.
func (s *ReconciliationService) currentParent(ctx context.Context, occ domain.Occurrence) (*domain.Transaction, error) {
	parent, err := s.txnRepo.FindTransactionByID(ctx, occ.ParentID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("parent %s: %w", occ.ParentID, apperrors.ErrStaleProjection)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read parent transaction: %w", err)
	}
	if !s.OwnsRecord(ctx, *parent) {
		return nil, fmt.Errorf("parent %s: %w", occ.ParentID, apperrors.ErrNotFound)
	}
	if parent.NextDate == nil || !domain.SameDay(*parent.NextDate, occ.Date()) {
		return nil, fmt.Errorf("parent %s: %w", occ.ParentID, apperrors.ErrStaleProjection)
	}
	return parent, nil
}

// Promote records a virtual occurrence as a real record. Store writes are not
// cancelled when ctx is: a disconnecting client must not leave a record created
// with its parent's next date still set.
func (s *ReconciliationService) Promote(ctx context.Context, occ domain.Occurrence, userID string) (domain.ReconciliationResult, error) {
	if !occ.IsVirtual() {
		return domain.ReconciliationResult{}, fmt.Errorf("%w: only projected occurrences can be promoted", apperrors.ErrValidation)
	}
	writeCtx := context.WithoutCancel(ctx)

	parent, err := s.currentParent(writeCtx, occ)
	if errors.Is(err, apperrors.ErrStaleProjection) {
		s.LogDebug(ctx, "Promote skipped, occurrence already reconciled", slog.String("parent_id", occ.ParentID))
		return staleResult, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to promote occurrence", slog.String("parent_id", occ.ParentID))
		return domain.ReconciliationResult{}, err
	}

	now := s.Now()
	record := parent.Clone()
	record.ID = ""
	record.Date = domain.DayOf(occ.Date())
	record.NextDate = nil
	record.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	created, err := s.txnRepo.CreateTransaction(writeCtx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to create promoted transaction", slog.String("parent_id", parent.ID))
		return domain.ReconciliationResult{}, fmt.Errorf("failed to promote occurrence: %w", err)
	}

	cleared, err := s.txnRepo.UpdateTransaction(writeCtx, parent.ID, domain.TransactionPatch{ClearNextDate: true}, userID)
	if err != nil {
		s.LogError(ctx, err, "Promoted transaction created but parent next date not cleared",
			slog.String("parent_id", parent.ID),
			slog.String("created_id", created.ID))
		s.PublishChange(writeCtx, domain.ChangePromoted, created.Kind, userID, created.ID)
		return domain.ReconciliationResult{Created: created}, fmt.Errorf("failed to clear next date after promotion: %w", err)
	}

	s.LogInfo(ctx, "Occurrence promoted",
		slog.String("parent_id", parent.ID),
		slog.String("created_id", created.ID))
	s.PublishChange(writeCtx, domain.ChangePromoted, created.Kind, userID, created.ID, parent.ID)
	return domain.ReconciliationResult{Created: created, Parent: cleared}, nil
}

// Dismiss removes an occurrence from the upcoming view: a virtual one by clearing
// its parent's next date, an actual one by deleting the record.
func (s *ReconciliationService) Dismiss(ctx context.Context, occ domain.Occurrence, userID string) (domain.ReconciliationResult, error) {
	writeCtx := context.WithoutCancel(ctx)

	if !occ.IsVirtual() {
		id := occ.Transaction.ID
		err := s.txnRepo.DeleteTransaction(writeCtx, id, userID)
		if errors.Is(err, apperrors.ErrNotFound) {
			return staleResult, nil
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to dismiss transaction", slog.String("transaction_id", id))
			return domain.ReconciliationResult{}, fmt.Errorf("failed to dismiss occurrence: %w", err)
		}
		s.PublishChange(writeCtx, domain.ChangeDismissed, occ.Transaction.Kind, userID, id)
		return domain.ReconciliationResult{DeletedID: id}, nil
	}

	parent, err := s.currentParent(writeCtx, occ)
	if errors.Is(err, apperrors.ErrStaleProjection) {
		return staleResult, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to dismiss occurrence", slog.String("parent_id", occ.ParentID))
		return domain.ReconciliationResult{}, err
	}

	cleared, err := s.txnRepo.UpdateTransaction(writeCtx, parent.ID, domain.TransactionPatch{ClearNextDate: true}, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to clear next date", slog.String("parent_id", parent.ID))
		return domain.ReconciliationResult{}, fmt.Errorf("failed to dismiss occurrence: %w", err)
	}
	s.PublishChange(writeCtx, domain.ChangeDismissed, parent.Kind, userID, parent.ID)
	return domain.ReconciliationResult{Parent: cleared}, nil
}

// findOccurrence projects the current records of kind and looks up occurrenceID.
func (s *ReconciliationService) findOccurrence(ctx context.Context, kind domain.TransactionKind, occurrenceID string) (domain.Occurrence, bool, error) {
	records, err := s.txnRepo.ListTransactions(ctx, &kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for reconciliation", slog.String("kind", string(kind)))
		return domain.Occurrence{}, false, fmt.Errorf("failed to list transactions: %w", err)
	}
	occ, ok := projection.FindOccurrence(projection.Project(s.OwnedRecords(ctx, records), s.Now()), occurrenceID)
	return occ, ok, nil
}

// resolveMissing decides what an occurrence ID that is not projected means. A
// record that is gone, or no longer projects the occurrence, was reconciled
// already. A record of another kind or another user is not found.
func (s *ReconciliationService) resolveMissing(ctx context.Context, kind domain.TransactionKind, occurrenceID string) (domain.ReconciliationResult, error) {
	recordID := occurrenceID
	if parentID, ok := domain.ParentIDFromVirtual(occurrenceID); ok {
		recordID = parentID
	}
	record, err := s.txnRepo.FindTransactionByID(ctx, recordID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return staleResult, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to read transaction for reconciliation", slog.String("transaction_id", recordID))
		return domain.ReconciliationResult{}, fmt.Errorf("failed to read transaction: %w", err)
	}
	if record.Kind != kind || !s.OwnsRecord(ctx, *record) {
		return domain.ReconciliationResult{}, fmt.Errorf("occurrence %s: %w", occurrenceID, apperrors.ErrNotFound)
	}
	return staleResult, nil
}

func (s *ReconciliationService) PromoteByID(ctx context.Context, kind domain.TransactionKind, occurrenceID string, userID string) (domain.ReconciliationResult, error) {
	if _, ok := domain.ParentIDFromVirtual(occurrenceID); !ok {
		return domain.ReconciliationResult{}, fmt.Errorf("%w: only projected occurrences can be promoted", apperrors.ErrValidation)
	}
	occ, ok, err := s.findOccurrence(ctx, kind, occurrenceID)
	if err != nil {
		return domain.ReconciliationResult{}, err
	}
	if !ok {
		return s.resolveMissing(ctx, kind, occurrenceID)
	}
	return s.Promote(ctx, occ, userID)
}

func (s *ReconciliationService) DismissByID(ctx context.Context, kind domain.TransactionKind, occurrenceID string, userID string) (domain.ReconciliationResult, error) {
	occ, ok, err := s.findOccurrence(ctx, kind, occurrenceID)
	if err != nil {
		return domain.ReconciliationResult{}, err
	}
	if !ok {
		return s.resolveMissing(ctx, kind, occurrenceID)
	}
	return s.Dismiss(ctx, occ, userID)
}
