package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportingService_SpendingByCategory(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)
	ctx := context.Background()
	from := domain.NewDate(2024, 1, 1)
	to := domain.NewDate(2024, 1, 31)
	rows := []domain.CategorySpending{{Category: "Food", Amount: decimal.NewFromInt(12)}}
	repo.On("SpendingByCategory", ctx, owner, &from, &to).Return(rows, nil).Once()

	got, err := svc.SpendingByCategory(ctx, owner, &from, &to)

	require.NoError(t, err)
	assert.Equal(t, rows, got)
	repo.AssertExpectations(t)
}

func TestReportingService_RejectsInvertedRange(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)
	from := domain.NewDate(2024, 2, 1)
	to := domain.NewDate(2024, 1, 1)

	_, err := svc.SpendingByCategory(context.Background(), owner, &from, &to)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SpendingByCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportingService_MonthlySpending(t *testing.T) {
	repo := new(MockReportingRepository)
	svc := services.NewReportingService(repo)
	ctx := context.Background()
	repo.On("MonthlySpending", ctx, owner).Return(nil, assert.AnError).Once()

	_, err := svc.MonthlySpending(ctx, owner)

	assert.ErrorIs(t, err, assert.AnError)
}
