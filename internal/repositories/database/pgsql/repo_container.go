package pgsql

import (
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository over one pool. Repositories
// share the pool, so a transaction opened by one is joined by the others.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
