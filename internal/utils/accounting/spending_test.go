package accounting

import (
	"testing"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spend(id, category, amount string, day domain.Date) domain.Transaction {
	t := txn(id, "A", domain.Debit, amount)
	t.Category = category
	t.Date = day
	return t
}

func TestSpendingByCategory(t *testing.T) {
	history := []domain.Transaction{
		spend("1", "Food", "10.50", domain.NewDate(2024, 1, 3)),
		spend("2", "Food", "4.50", domain.NewDate(2024, 1, 20)),
		spend("3", "Travel", "100", domain.NewDate(2024, 2, 1)),
		txn("4", "A", domain.Credit, "1000"),
	}

	all := SpendingByCategory(history, nil, nil)
	require.Len(t, all, 2)
	assert.Equal(t, "Food", all[0].Category)
	assertDecimal(t, "15", all[0].Amount)
	assert.Equal(t, "Travel", all[1].Category)

	from := domain.NewDate(2024, 1, 10)
	to := domain.NewDate(2024, 1, 31)
	january := SpendingByCategory(history, &from, &to)
	require.Len(t, january, 1)
	assertDecimal(t, "4.50", january[0].Amount)
}

func TestMonthlySpending(t *testing.T) {
	history := []domain.Transaction{
		spend("1", "Food", "10", domain.NewDate(2024, 2, 3)),
		spend("2", "Food", "5", domain.NewDate(2024, 1, 20)),
		spend("3", "Rent", "7", domain.NewDate(2024, 2, 28)),
	}

	months := MonthlySpending(history)
	require.Len(t, months, 2)
	assert.Equal(t, "2024-01", months[0].Month)
	assertDecimal(t, "5", months[0].Amount)
	assert.Equal(t, "2024-02", months[1].Month)
	assertDecimal(t, "17", months[1].Amount)
}
