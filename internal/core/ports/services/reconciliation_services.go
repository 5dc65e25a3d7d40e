package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ReconciliationSvc turns upcoming occurrences into stored records or removes them.
type ReconciliationSvc interface {
	// Promote records a virtual occurrence as a real record and clears its parent's next date.
	Promote(ctx context.Context, occ domain.Occurrence, userID string) (domain.ReconciliationResult, error)

	// Dismiss removes an occurrence from the upcoming view without recording it.
	Dismiss(ctx context.Context, occ domain.Occurrence, userID string) (domain.ReconciliationResult, error)

	// PromoteByID locates the upcoming occurrence with the given ID and promotes it.
	PromoteByID(ctx context.Context, kind domain.TransactionKind, occurrenceID string, userID string) (domain.ReconciliationResult, error)

	// DismissByID locates the upcoming occurrence with the given ID and dismisses it.
	DismissByID(ctx context.Context, kind domain.TransactionKind, occurrenceID string, userID string) (domain.ReconciliationResult, error)
}
