package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	// Clock returns the current time; nil means time.Now.
	Clock func() time.Time
	// Publisher receives change events after successful writes; nil disables them.
	Publisher portssvc.ChangePublisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		// Return a default logger if not found in context
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the service's notion of the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.Clock != nil {
		return s.Clock().UTC()
	}
	return time.Now().UTC()
}

// OwnsRecord reports whether the user authenticated in ctx may see t. Records belong
// to the user who created them; a context without a user is not scoped.
func (s *BaseService) OwnsRecord(ctx context.Context, t domain.Transaction) bool {
	userID, ok := middleware.GetUserIDFromCtx(ctx)
	return !ok || t.CreatedBy == userID
}

// OwnedRecords keeps the records OwnsRecord accepts.
func (s *BaseService) OwnedRecords(ctx context.Context, records []domain.Transaction) []domain.Transaction {
	if _, ok := middleware.GetUserIDFromCtx(ctx); !ok {
		return records
	}
	out := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		if s.OwnsRecord(ctx, r) {
			out = append(out, r)
		}
	}
	return out
}

// PublishChange announces a change. Publishing failures are logged, never returned:
// the write they describe has already succeeded.
func (s *BaseService) PublishChange(ctx context.Context, changeType domain.ChangeType, kind domain.TransactionKind, userID string, ids ...string) {
	if s.Publisher == nil {
		return
	}
	event := domain.ChangeEvent{
		Type:           changeType,
		Kind:           kind,
		TransactionIDs: ids,
		UserID:         userID,
		OccurredAt:     s.Now(),
	}
	if err := s.Publisher.PublishChange(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish change event",
			slog.String("change_type", string(changeType)),
			slog.Any("transaction_ids", ids))
	}
}
