package dto

import (
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/utils"
)

// BalancesResponse maps account names to their aggregate balance.
// Display holds the same balances formatted in Currency.
type BalancesResponse struct {
	Balances map[string]string `json:"balances"`
	Display  map[string]string `json:"display"`
	Currency string            `json:"currency"`
}

// ToBalancesResponse converts account balances for presentation.
func ToBalancesResponse(balances []domain.AccountBalance, currency string) BalancesResponse {
	res := BalancesResponse{
		Balances: make(map[string]string, len(balances)),
		Display:  make(map[string]string, len(balances)),
		Currency: currency,
	}
	for _, ab := range balances {
		res.Balances[ab.Account.Name] = utils.FormatAmount(ab.Balance)
		res.Display[ab.Account.Name] = utils.DisplayAmount(ab.Balance, currency)
	}
	return res
}

// SpendingByCategoryParams bounds the category report. Both dates are optional and inclusive.
type SpendingByCategoryParams struct {
	StartDate string `form:"start_date" example:"2024-01-01"`
	EndDate   string `form:"end_date" example:"2024-01-31"`
}

// CategorySpendingResponse is one row of the category report.
type CategorySpendingResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// MonthlySpendingResponse is one row of the monthly report.
type MonthlySpendingResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// ToCategorySpendingResponses converts report rows.
func ToCategorySpendingResponses(rows []domain.CategorySpending) []CategorySpendingResponse {
	res := make([]CategorySpendingResponse, len(rows))
	for i, row := range rows {
		res[i] = CategorySpendingResponse{Category: row.Category, Amount: utils.FormatAmount(row.Amount)}
	}
	return res
}

// ToMonthlySpendingResponses converts report rows.
func ToMonthlySpendingResponses(rows []domain.MonthlySpending) []MonthlySpendingResponse {
	res := make([]MonthlySpendingResponse, len(rows))
	for i, row := range rows {
		res[i] = MonthlySpendingResponse{Month: row.Month, Amount: utils.FormatAmount(row.Amount)}
	}
	return res
}
