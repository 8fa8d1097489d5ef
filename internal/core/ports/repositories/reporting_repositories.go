package repositories

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
)

// ReportingRepository defines operations for retrieving spending report data
type ReportingRepository interface {
	// SpendingByCategory sums debits per category within the inclusive date range. Nil bounds are open.
	SpendingByCategory(ctx context.Context, ownerID string, from, to *domain.Date) ([]domain.CategorySpending, error)

	// MonthlySpending sums debits per YYYY-MM month.
	MonthlySpending(ctx context.Context, ownerID string) ([]domain.MonthlySpending, error)
}
