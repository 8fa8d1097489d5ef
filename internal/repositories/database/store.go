// Package database selects and opens the configured storage backend.
package database

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/SscSPs/expense_manager_backend/internal/platform/config"
	"github.com/SscSPs/expense_manager_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/expense_manager_backend/internal/repositories/database/sqlite"
	dbconn "github.com/SscSPs/expense_manager_backend/pkg/database"
)

// Store is an opened backend and its repositories.
type Store struct {
	Repos   portsrepo.RepositoryProvider
	Backend string
	close   func()
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// Open connects to the backend named by cfg.StoreBackend.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := dbconn.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repos:   pgsql.NewRepositoryProvider(pool),
			Backend: cfg.StoreBackend,
			close:   func() { dbconn.ClosePgxPool(pool) },
		}, nil
	case config.BackendSQLite:
		db, err := dbconn.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repos:   sqlite.NewRepositoryProvider(db),
			Backend: cfg.StoreBackend,
			close:   func() { _ = db.Close() },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}

// NewMigrator returns a migrator for the configured backend. An empty
// cfg.MigrationsPath uses the migrations embedded in the binary.
func NewMigrator(cfg *config.Config) (*dbconn.Migrator, error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		return dbconn.NewPostgresMigrator(cfg.DatabaseURL, cfg.MigrationsPath)
	case config.BackendSQLite:
		return dbconn.NewSQLiteMigrator(cfg.SQLitePath, cfg.MigrationsPath)
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}
