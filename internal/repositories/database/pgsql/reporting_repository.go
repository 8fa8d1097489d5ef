package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SpendingByCategory sums debits per category. Nil bounds are open.
func (r *reportingRepository) SpendingByCategory(ctx context.Context, ownerID string, from, to *domain.Date) ([]domain.CategorySpending, error) {
	w := &whereBuilder{}
	w.add("owner_id = ?", ownerID)
	w.add("transaction_type = ?", string(domain.Debit))
	if from != nil {
		w.add("txn_date >= ?", from.Time())
	}
	if to != nil {
		w.add("txn_date <= ?", to.Time())
	}

	query := `
		SELECT category, SUM(amount) AS amount
		FROM transactions
		WHERE ` + w.sql() + `
		GROUP BY category
		ORDER BY category;
	`
	rows, err := r.db(ctx).Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying spending by category: %w", err)
	}
	result, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.CategorySpending])
	if err != nil {
		return nil, fmt.Errorf("error scanning spending by category: %w", err)
	}
	return result, nil
}

// MonthlySpending sums debits per calendar month.
func (r *reportingRepository) MonthlySpending(ctx context.Context, ownerID string) ([]domain.MonthlySpending, error) {
	query := `
		SELECT to_char(txn_date, 'YYYY-MM') AS month, SUM(amount) AS amount
		FROM transactions
		WHERE owner_id = $1 AND transaction_type = $2
		GROUP BY month
		ORDER BY month;
	`
	rows, err := r.db(ctx).Query(ctx, query, ownerID, string(domain.Debit))
	if err != nil {
		return nil, fmt.Errorf("error querying monthly spending: %w", err)
	}
	result, err := pgx.CollectRows(rows, pgx.RowToStructByPos[domain.MonthlySpending])
	if err != nil {
		return nil, fmt.Errorf("error scanning monthly spending: %w", err)
	}
	return result, nil
}
