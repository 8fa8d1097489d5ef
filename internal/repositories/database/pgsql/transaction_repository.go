package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/SscSPs/expense_manager_backend/internal/models"
	"github.com/SscSPs/expense_manager_backend/internal/utils"
	"github.com/SscSPs/expense_manager_backend/internal/utils/mapping"
	"github.com/SscSPs/expense_manager_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, seq, owner_id, txn_date, description, place, amount, transaction_type,
	category, account_id, to_account_id, paid_by, status, transaction_balance,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction rows: %w", err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// SaveTransaction inserts a transaction. seq is assigned by the database.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, owner_id, txn_date, description, place, amount, transaction_type,
			category, account_id, to_account_id, paid_by, status, transaction_balance,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db(ctx).Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.Date,
		m.Description,
		m.Place,
		m.Amount,
		m.TransactionType,
		m.Category,
		m.AccountID,
		m.ToAccountID,
		m.PaidBy,
		m.Status,
		m.TransactionBalance,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, fmt.Sprintf("save transaction %s", m.TransactionID))
	}
	return nil
}

// FindTransactionByID retrieves one of the owner's transactions.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE owner_id = $1 AND transaction_id = $2;`,
		ownerID, transactionID)
	if err != nil {
		return nil, mapError(err, "query transaction")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapError(err, "scan transaction")
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListHistory returns the owner's transactions in insertion order.
func (r *PgxTransactionRepository) ListHistory(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE owner_id = $1 ORDER BY seq;`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for owner %s: %w", ownerID, err)
	}
	return collectTransactions(rows)
}

// ListAccountHistory returns, in insertion order, the owner's transactions touching accountID.
func (r *PgxTransactionRepository) ListAccountHistory(ctx context.Context, ownerID, accountID string) ([]domain.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		WHERE owner_id = $1 AND (account_id = $2 OR to_account_id = $2)
		ORDER BY seq;`, ownerID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for account %s: %w", accountID, err)
	}
	return collectTransactions(rows)
}

// ListTransactions returns a newest-first page keyed on (created_at, transaction_id).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []any{ownerID}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner_id = $1`
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += ` AND (created_at, transaction_id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for owner %s: %w", ownerID, err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	page, more := pagination.Page(txns, limit)
	if !more {
		return page, nil, nil
	}
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.TransactionID})
	return page, &token, nil
}

// whereBuilder accumulates AND-ed conditions with positional arguments.
type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) sql() string {
	return strings.Join(w.conds, " AND ")
}

func buildFilter(ownerID string, f domain.TransactionFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("owner_id = ?", ownerID)
	if f.SearchTerm != "" {
		w.add(`(description ILIKE ? ESCAPE '\' OR place ILIKE ? ESCAPE '\' OR category ILIKE ? ESCAPE '\')`, utils.ContainsPattern(f.SearchTerm))
	}
	if f.DateFrom != nil {
		w.add("txn_date >= ?", f.DateFrom.Time())
	}
	if f.DateTo != nil {
		w.add("txn_date <= ?", f.DateTo.Time())
	}
	if len(f.Types) > 0 {
		types := make([]string, len(f.Types))
		for i, t := range f.Types {
			types[i] = string(t)
		}
		w.add("transaction_type = ANY(?)", types)
	}
	if len(f.Categories) > 0 {
		w.add("category = ANY(?)", f.Categories)
	}
	if len(f.AccountIDs) > 0 {
		w.add("account_id = ANY(?)", f.AccountIDs)
	}
	if f.MinAmount != nil {
		w.add("amount >= CAST(? AS NUMERIC)", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		w.add("amount <= CAST(? AS NUMERIC)", f.MaxAmount.String())
	}
	return w
}

// FilterTransactions returns one page of matches, most recently inserted first.
func (r *PgxTransactionRepository) FilterTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	w := buildFilter(ownerID, filter)

	var total int
	if err := r.db(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM transactions WHERE `+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}
	if total == 0 {
		return []domain.Transaction{}, 0, nil
	}

	n := len(w.args)
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE %s ORDER BY seq DESC LIMIT $%d OFFSET $%d;`,
		transactionColumns, w.sql(), n+1, n+2)
	rows, err := r.db(ctx).Query(ctx, query, append(w.args, filter.Limit, filter.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to filter transactions: %w", err)
	}
	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txns, total, nil
}

// DeleteTransaction removes a transaction without touching other snapshots.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM transactions WHERE owner_id = $1 AND transaction_id = $2;`, ownerID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateTransactionStatus sets the status column only.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, ownerID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) error {
	tag, err := r.db(ctx).Exec(ctx, `
		UPDATE transactions
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE owner_id = $1 AND transaction_id = $2;`,
		ownerID, transactionID, string(status), now, userID)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
