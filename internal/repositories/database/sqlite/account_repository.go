package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/SscSPs/expense_manager_backend/internal/models"
	"github.com/SscSPs/expense_manager_backend/internal/utils/mapping"
)

const accountColumns = `account_id, owner_id, name, kind, created_at, created_by, last_updated_at, last_updated_by`

type AccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryWithTx = (*AccountRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (domain.Account, error) {
	var (
		m                    models.Account
		createdAt, updatedAt string
	)
	if err := row.Scan(&m.AccountID, &m.OwnerID, &m.Name, &m.Kind, &createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy); err != nil {
		return domain.Account{}, err
	}
	var err error
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Account{}, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.db(ctx).ExecContext(ctx,
		`INSERT INTO accounts (`+accountColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		m.AccountID, m.OwnerID, m.Name, m.Kind,
		formatTime(m.CreatedAt), m.CreatedBy, formatTime(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		return mapError(err, fmt.Sprintf("save account %q", m.Name))
	}
	return nil
}

func (r *AccountRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Account, error) {
	account, err := scanAccount(r.db(ctx).QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "find account")
	}
	return &account, nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE owner_id = ? AND account_id = ?`, ownerID, accountID)
}

func (r *AccountRepository) FindAccountByName(ctx context.Context, ownerID, name string) (*domain.Account, error) {
	return r.findOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE owner_id = ? AND name = ?`, ownerID, name)
}

func (r *AccountRepository) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	rows, err := r.db(ctx).QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE owner_id = ? ORDER BY name`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for owner %s: %w", ownerID, err)
	}
	defer rows.Close()
	return collect(rows, scanAccount)
}

// collect scans every row with scan.
func collect[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return out, nil
}
