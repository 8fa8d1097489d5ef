package services

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves one of the owner's transactions.
	GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a newest-first page. The returned token is nil on the last page.
	ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error)

	// FilterTransactions searches the owner's transactions.
	FilterTransactions(ctx context.Context, ownerID string, req dto.FilterTransactionsRequest) (*domain.TransactionPage, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction validates, computes the running balance snapshot and stores the transaction.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction without recomputing later snapshots.
	DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error

	// UpdateTransactionStatus changes the status of a transaction.
	UpdateTransactionStatus(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionStatusRequest) (*domain.Transaction, error)
}

// TransactionAuditSvc defines read-only consistency checks
type TransactionAuditSvc interface {
	// AuditSnapshots reports stored running balances that differ from a fresh recomputation.
	AuditSnapshots(ctx context.Context, ownerID string) ([]domain.SnapshotDrift, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionAuditSvc
}
