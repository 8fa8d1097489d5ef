package sqlite

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
)

const transactionColumns = `transaction_id, seq, owner_id, txn_date, description, place, amount, transaction_type,
	category, account_id, to_account_id, paid_by, status, transaction_balance,
	created_at, created_by, last_updated_at, last_updated_by`

// TransactionRepository stores amounts and dates as TEXT; decimal.Decimal
// round-trips through its Scanner and Valuer.
type TransactionRepository struct {
	BaseRepository
}

var _ portsrepo.TransactionRepositoryWithTx = (*TransactionRepository)(nil)

func scanTransaction(row rowScanner) (domain.Transaction, error) {
	var (
		m                             models.Transaction
		txnDate, createdAt, updatedAt string
	)
	err := row.Scan(&m.TransactionID, &m.Seq, &m.OwnerID, &txnDate, &m.Description, &m.Place, &m.Amount,
		&m.TransactionType, &m.Category, &m.AccountID, &m.ToAccountID, &m.PaidBy, &m.Status, &m.TransactionBalance,
		&createdAt, &m.CreatedBy, &updatedAt, &m.LastUpdatedBy)
	if err != nil {
		return domain.Transaction{}, err
	}
	date, err := domain.ParseDate(txnDate)
	if err != nil {
		return domain.Transaction{}, err
	}
	m.Date = date.Time()
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return domain.Transaction{}, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

func (r *TransactionRepository) query(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()
	return collect(rows, scanTransaction)
}

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	_, err := r.db(ctx).ExecContext(ctx, `
		INSERT INTO transactions (transaction_id, owner_id, txn_date, description, place, amount, transaction_type,
			category, account_id, to_account_id, paid_by, status, transaction_balance,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.TransactionID, m.OwnerID, txn.Date.String(), m.Description, m.Place, m.Amount.String(), m.TransactionType,
		m.Category, m.AccountID, m.ToAccountID, m.PaidBy, m.Status, m.TransactionBalance.String(),
		formatTime(m.CreatedAt), m.CreatedBy, formatTime(m.LastUpdatedAt), m.LastUpdatedBy)
	if err != nil {
		return mapError(err, fmt.Sprintf("save transaction %s", m.TransactionID))
	}
	return nil
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	txn, err := scanTransaction(r.db(ctx).QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE owner_id = ? AND transaction_id = ?`, ownerID, transactionID))
	if err != nil {
		return nil, mapError(err, "find transaction")
	}
	return &txn, nil
}

func (r *TransactionRepository) ListHistory(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	return r.query(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE owner_id = ? ORDER BY seq`, ownerID)
}

func (r *TransactionRepository) ListAccountHistory(ctx context.Context, ownerID, accountID string) ([]domain.Transaction, error) {
	return r.query(ctx, `SELECT `+transactionColumns+` FROM transactions
		WHERE owner_id = ? AND (account_id = ? OR to_account_id = ?) ORDER BY seq`, ownerID, accountID, accountID)
}

// ListTransactions returns a newest-first page keyed on (created_at, transaction_id).
func (r *TransactionRepository) ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []any{ownerID}
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE owner_id = ?`
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		createdAt := formatTime(cursor.CreatedAt)
		query += ` AND (created_at < ? OR (created_at = ? AND transaction_id < ?))`
		args = append(args, createdAt, createdAt, cursor.ID)
	}
	query += ` ORDER BY created_at DESC, transaction_id DESC LIMIT ?`
	args = append(args, limit+1)

	txns, err := r.query(ctx, query, args...)
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

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// FilterTransactions narrows rows in SQL and applies amount bounds in Go,
// since amounts are stored as TEXT.
func (r *TransactionRepository) FilterTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	conds := []string{"owner_id = ?"}
	args := []any{ownerID}
	if filter.SearchTerm != "" {
		// LIKE is case-insensitive for ASCII in SQLite
		like := utils.ContainsPattern(filter.SearchTerm)
		conds = append(conds, `(description LIKE ? ESCAPE '\' OR place LIKE ? ESCAPE '\' OR category LIKE ? ESCAPE '\')`)
		args = append(args, like, like, like)
	}
	if filter.DateFrom != nil {
		conds = append(conds, "txn_date >= ?")
		args = append(args, filter.DateFrom.String())
	}
	if filter.DateTo != nil {
		conds = append(conds, "txn_date <= ?")
		args = append(args, filter.DateTo.String())
	}
	if len(filter.Types) > 0 {
		conds = append(conds, "transaction_type IN ("+placeholders(len(filter.Types))+")")
		for _, t := range filter.Types {
			args = append(args, string(t))
		}
	}
	if len(filter.Categories) > 0 {
		conds = append(conds, "category IN ("+placeholders(len(filter.Categories))+")")
		for _, c := range filter.Categories {
			args = append(args, c)
		}
	}
	if len(filter.AccountIDs) > 0 {
		conds = append(conds, "account_id IN ("+placeholders(len(filter.AccountIDs))+")")
		for _, id := range filter.AccountIDs {
			args = append(args, id)
		}
	}

	candidates, err := r.query(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE `+
		strings.Join(conds, " AND ")+` ORDER BY seq DESC`, args...)
	if err != nil {
		return nil, 0, err
	}

	matches := candidates[:0]
	for _, txn := range candidates {
		if filter.MinAmount != nil && txn.Amount.LessThan(*filter.MinAmount) {
			continue
		}
		if filter.MaxAmount != nil && txn.Amount.GreaterThan(*filter.MaxAmount) {
			continue
		}
		matches = append(matches, txn)
	}

	total := len(matches)
	start := min(filter.Offset(), total)
	end := min(start+filter.Limit, total)
	return matches[start:end], total, nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	res, err := r.db(ctx).ExecContext(ctx, `DELETE FROM transactions WHERE owner_id = ? AND transaction_id = ?`, ownerID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return requireAffected(res)
}

func (r *TransactionRepository) UpdateTransactionStatus(ctx context.Context, ownerID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) error {
	res, err := r.db(ctx).ExecContext(ctx, `
		UPDATE transactions SET status = ?, last_updated_at = ?, last_updated_by = ?
		WHERE owner_id = ? AND transaction_id = ?`,
		string(status), formatTime(now), userID, ownerID, transactionID)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", transactionID, err)
	}
	return requireAffected(res)
}

type rowsAffecter interface {
	RowsAffected() (int64, error)
}

func requireAffected(res rowsAffecter) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
