package repositories

import "context"

// TransactionManager runs work inside a database transaction.
// The transaction travels in the context handed to fn; repository calls made
// with that context join it. Calls made with any other context do not.
type TransactionManager interface {
	// WithinTx commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error

	// LockOwner blocks other writers for ownerID until the surrounding transaction ends.
	// It must be called with a context obtained from WithinTx.
	LockOwner(ctx context.Context, ownerID string) error
}
