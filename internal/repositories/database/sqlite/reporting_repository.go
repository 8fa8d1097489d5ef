package sqlite

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/SscSPs/expense_manager_backend/internal/utils/accounting"
)

// reportingRepository folds the owner's history in Go; SQLite has no exact
// decimal SUM over TEXT amounts.
type reportingRepository struct {
	txns *TransactionRepository
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

func (r *reportingRepository) SpendingByCategory(ctx context.Context, ownerID string, from, to *domain.Date) ([]domain.CategorySpending, error) {
	history, err := r.txns.ListHistory(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return accounting.SpendingByCategory(history, from, to), nil
}

func (r *reportingRepository) MonthlySpending(ctx context.Context, ownerID string) ([]domain.MonthlySpending, error) {
	history, err := r.txns.ListHistory(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return accounting.MonthlySpending(history), nil
}
