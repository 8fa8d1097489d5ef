package services

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves one of the owner's accounts.
	GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts of an owner.
	ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account and, for a non-zero initial balance, its opening transaction.
	CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error)

	// DeleteAccount is not supported and always returns ErrNotImplemented.
	DeleteAccount(ctx context.Context, ownerID string, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
