package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific record by its ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListSettled retrieves a filtered, paginated page of settled records of one kind, newest first.
	ListSettled(ctx context.Context, kind domain.TransactionKind, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates the request and persists a new record.
	CreateTransaction(ctx context.Context, kind domain.TransactionKind, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateTransaction applies a partial update to an existing record.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, requestingUserID string) (*domain.Transaction, error)

	// DeleteTransaction soft-deletes a record.
	DeleteTransaction(ctx context.Context, transactionID string, requestingUserID string) error
}

// AutoAddSvc turns free text into validated records.
type AutoAddSvc interface {
	// AutoAdd parses the text into suggestions and creates one record per accepted suggestion.
	AutoAdd(ctx context.Context, kind domain.TransactionKind, req dto.AutoAddRequest, creatorUserID string) (*dto.AutoAddResponse, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
// This is a facade for clients that need access to all operations
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	AutoAddSvc
}
