package dto

import (
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/utils"
)

// CreateAccountRequest defines the data needed to create a new account.
// A non-zero initial balance is recorded as an opening transaction.
type CreateAccountRequest struct {
	Name           string  `json:"name" binding:"required"`
	Type           string  `json:"type" binding:"required"`
	InitialBalance *Amount `json:"initial_balance" swaggertype:"string" example:"500.00"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Balance   *string   `json:"balance,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.AccountID,
		Name:      acc.Name,
		Type:      acc.Kind,
		CreatedAt: acc.CreatedAt,
	}
}

// ToListAccountResponse converts account balances to AccountResponse DTOs carrying the balance.
func ToListAccountResponse(balances []domain.AccountBalance) []AccountResponse {
	res := make([]AccountResponse, len(balances))
	for i, ab := range balances {
		res[i] = ToAccountResponse(&ab.Account)
		formatted := utils.FormatAmount(ab.Balance)
		res[i].Balance = &formatted
	}
	return res
}
