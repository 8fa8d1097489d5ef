package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{reportingRepo: repo}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) SpendingByCategory(ctx context.Context, ownerID string, from, to *domain.Date) ([]domain.CategorySpending, error) {
	if from != nil && to != nil && from.After(*to) {
		return nil, fmt.Errorf("%w: start_date %s is after end_date %s", apperrors.ErrValidation, from, to)
	}
	rows, err := s.reportingRepo.SpendingByCategory(ctx, ownerID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to get spending by category", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to get spending by category: %w", err)
	}
	return rows, nil
}

func (s *reportingService) MonthlySpending(ctx context.Context, ownerID string) ([]domain.MonthlySpending, error) {
	rows, err := s.reportingRepo.MonthlySpending(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get monthly spending", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to get monthly spending: %w", err)
	}
	return rows, nil
}
