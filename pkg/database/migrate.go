package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/SscSPs/expense_manager_backend/migrations"
	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Migrator applies schema migrations to one database.
type Migrator struct {
	m *migrate.Migrate
}

// NewPostgresMigrator opens its own connection to databaseURL. An empty
// sourceURL uses the embedded postgres migrations.
func NewPostgresMigrator(databaseURL, sourceURL string) (*Migrator, error) {
	// pgx/v5/stdlib keeps migrations on the same driver as the main pool
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping migration database: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create postgres driver: %w", err)
	}
	return newMigrator(driver, "postgres", migrations.Postgres, "postgres", sourceURL)
}

// NewSQLiteMigrator opens its own connection to the database file at path.
func NewSQLiteMigrator(path, sourceURL string) (*Migrator, error) {
	db, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite driver: %w", err)
	}
	return newMigrator(driver, "sqlite", migrations.SQLite, "sqlite", sourceURL)
}

func newMigrator(driver migratedb.Driver, dbName string, embedded fs.FS, dir, sourceURL string) (*Migrator, error) {
	var (
		m   *migrate.Migrate
		err error
	)
	if sourceURL != "" {
		m, err = migrate.NewWithDatabaseInstance(sourceURL, dbName, driver)
	} else {
		src, srcErr := iofs.New(embedded, dir)
		if srcErr != nil {
			driver.Close()
			return nil, fmt.Errorf("create iofs source: %w", srcErr)
		}
		m, err = migrate.NewWithInstance("iofs", src, dbName, driver)
	}
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Up applies every pending migration. It reports false when nothing changed.
func (mg *Migrator) Up() (bool, error) {
	err := mg.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("apply migrations: %w", err)
	}
	return true, nil
}

// Down reverts the most recent migration.
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil {
		return fmt.Errorf("revert migration: %w", err)
	}
	return nil
}

// Version returns the applied version. ok is false on a fresh database.
func (mg *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	version, dirty, err = mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, true, nil
}

// Close releases the source and the database connection.
func (mg *Migrator) Close() error {
	sourceErr, dbErr := mg.m.Close()
	return errors.Join(sourceErr, dbErr)
}
