package accounting

import (
	"sort"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SpendingByCategory sums debit amounts per category within the inclusive date range.
// Nil bounds are open. The result is sorted by category.
func SpendingByCategory(history []domain.Transaction, from, to *domain.Date) []domain.CategorySpending {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range history {
		if txn.Type != domain.Debit || !txn.Date.Within(from, to) {
			continue
		}
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	result := make([]domain.CategorySpending, 0, len(totals))
	for category, amount := range totals {
		result = append(result, domain.CategorySpending{Category: category, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Category < result[j].Category })
	return result
}

// MonthlySpending sums debit amounts per YYYY-MM, sorted by month.
func MonthlySpending(history []domain.Transaction) []domain.MonthlySpending {
	totals := make(map[string]decimal.Decimal)
	for _, txn := range history {
		if txn.Type != domain.Debit {
			continue
		}
		month := txn.Date.MonthKey()
		totals[month] = totals[month].Add(txn.Amount)
	}

	result := make([]domain.MonthlySpending, 0, len(totals))
	for month, amount := range totals {
		result = append(result, domain.MonthlySpending{Month: month, Amount: amount})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result
}
