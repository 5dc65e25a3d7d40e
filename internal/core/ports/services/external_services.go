package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// SuggestionParser turns free text (a receipt transcript, a chat message) into
// partial record suggestions. Its output is untrusted.
type SuggestionParser interface {
	ParseSuggestions(ctx context.Context, text string) ([]domain.Suggestion, error)
}

// ChangePublisher announces that stored records changed so that views refetch.
type ChangePublisher interface {
	PublishChange(ctx context.Context, event domain.ChangeEvent) error
}
