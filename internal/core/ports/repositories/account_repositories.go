package repositories

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Every lookup is scoped to one owner.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error)

	// FindAccountByName retrieves the owner's account with the given name.
	FindAccountByName(ctx context.Context, ownerID, name string) (*domain.Account, error)

	// ListAccounts retrieves all accounts of an owner ordered by name.
	ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account. A name already used by the owner yields ErrDuplicate.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
