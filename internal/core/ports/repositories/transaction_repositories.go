package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves one of the owner's transactions.
	FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error)

	// ListHistory returns every transaction of the owner in insertion order, oldest first.
	ListHistory(ctx context.Context, ownerID string) ([]domain.Transaction, error)

	// ListAccountHistory returns, oldest first, the owner's transactions whose source
	// or destination is accountID.
	ListAccountHistory(ctx context.Context, ownerID, accountID string) ([]domain.Transaction, error)

	// ListTransactions retrieves a newest-first page using token-based pagination.
	// The returned token is nil on the last page.
	ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FilterTransactions returns one newest-first page of matches and the total match count.
	FilterTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction with its precomputed balance snapshot.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction. Other snapshots are left untouched.
	DeleteTransaction(ctx context.Context, ownerID, transactionID string) error

	// UpdateTransactionStatus sets the status of a transaction.
	UpdateTransactionStatus(ctx context.Context, ownerID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
