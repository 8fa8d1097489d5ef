package services

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
)

// ReportingService defines operations for generating spending reports
type ReportingService interface {
	// SpendingByCategory sums debits per category within the inclusive date range.
	SpendingByCategory(ctx context.Context, ownerID string, from, to *domain.Date) ([]domain.CategorySpending, error)

	// MonthlySpending sums debits per month.
	MonthlySpending(ctx context.Context, ownerID string) ([]domain.MonthlySpending, error)
}
