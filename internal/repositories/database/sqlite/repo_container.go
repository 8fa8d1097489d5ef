package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository over one *sql.DB opened with
// database.OpenSQLite.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	txns := &TransactionRepository{BaseRepository: base}
	return portsrepo.RepositoryProvider{
		AccountRepo:     &AccountRepository{BaseRepository: base},
		TransactionRepo: txns,
		UserRepo:        &UserRepository{BaseRepository: base},
		ReportingRepo:   &reportingRepository{txns: txns},
	}
}
