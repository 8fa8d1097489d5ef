package dto

import (
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/utils"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Accounts are referenced by name; ToAccount may be omitted or "None".
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required" example:"2024-01-31"`
	Description string  `json:"description"`
	Place       string  `json:"place"`
	Amount      Amount  `json:"amount" binding:"required" swaggertype:"string" example:"12.50"`
	Type        string  `json:"type" binding:"required,txtype" enums:"credit,debit,debt_incurred,transferred,self_transferred"`
	Category    string  `json:"category"`
	Account     string  `json:"account" binding:"required"`
	ToAccount   *string `json:"to_account"`
	PaidBy      string  `json:"paid_by"`
	Status      string  `json:"status" binding:"omitempty,txstatus" enums:"Pending,Completed,Settled"`
}

// UpdateTransactionStatusRequest changes the status of a transaction.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required,txstatus" enums:"Pending,Completed,Settled"`
}

// TransactionResponse defines the data returned for a transaction.
// Account ids are replaced by account names.
type TransactionResponse struct {
	ID                 string      `json:"id"`
	Date               domain.Date `json:"date" swaggertype:"string" example:"2024-01-31"`
	Description        string      `json:"description"`
	Place              string      `json:"place"`
	Amount             string      `json:"amount"`
	Type               string      `json:"type"`
	Category           string      `json:"category"`
	Account            string      `json:"account"`
	ToAccount          string      `json:"to_account"`
	PaidBy             string      `json:"paid_by"`
	Status             string      `json:"status"`
	TransactionBalance string      `json:"transaction_balance"`
	CreatedAt          time.Time   `json:"created_at"`
}

// ToTransactionResponse converts a domain.Transaction using names to resolve account ids.
// Unresolvable ids are shown as-is.
func ToTransactionResponse(txn *domain.Transaction, names map[string]string) TransactionResponse {
	toAccount := domain.NoAccount
	if txn.ToAccountID != nil {
		toAccount = nameOf(*txn.ToAccountID, names)
	}
	return TransactionResponse{
		ID:                 txn.TransactionID,
		Date:               txn.Date,
		Description:        txn.Description,
		Place:              txn.Place,
		Amount:             txn.Amount.String(),
		Type:               string(txn.Type),
		Category:           txn.Category,
		Account:            nameOf(txn.AccountID, names),
		ToAccount:          toAccount,
		PaidBy:             txn.PaidBy,
		Status:             string(txn.Status),
		TransactionBalance: utils.FormatAmount(txn.TransactionBalance),
		CreatedAt:          txn.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction, names map[string]string) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i], names)
	}
	return responses
}

// AccountNames indexes account names by id.
func AccountNames(accounts []domain.Account) map[string]string {
	names := make(map[string]string, len(accounts))
	for _, acc := range accounts {
		names[acc.AccountID] = acc.Name
	}
	return names
}

func nameOf(id string, names map[string]string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=10" binding:"min=1,max=100"`
	NextToken *string `form:"next_token"`
}

// ListTransactionsResponse wraps one newest-first page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"next_token,omitempty"`
}

// FilterTransactionsRequest is the search payload of POST /transactions/filter.
// Dates are inclusive YYYY-MM-DD bounds.
type FilterTransactionsRequest struct {
	Page       int      `json:"page" binding:"omitempty,min=1"`
	Limit      int      `json:"limit" binding:"omitempty,min=1,max=500"`
	SearchTerm string   `json:"searchTerm"`
	DateFrom   string   `json:"dateFrom" example:"2024-01-01"`
	DateTo     string   `json:"dateTo" example:"2024-01-31"`
	Types      []string `json:"type" binding:"omitempty,dive,txtype"`
	Categories []string `json:"categories"`
	Accounts   []string `json:"accounts"`
	MinAmount  *Amount  `json:"minAmount" swaggertype:"string"`
	MaxAmount  *Amount  `json:"maxAmount" swaggertype:"string"`
}

// FilterTransactionsResponse carries one page of matches and the total match count.
type FilterTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Page         int                   `json:"page"`
	Limit        int                   `json:"limit"`
	Total        int                   `json:"total"`
}
