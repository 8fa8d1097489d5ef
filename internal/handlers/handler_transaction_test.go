package handlers_test

import (
	"net/http"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func ownedAccounts() []domain.Account {
	return []domain.Account{
		{AccountID: "acc-1", Name: "Checking"},
		{AccountID: "acc-2", Name: "Wallet"},
	}
}

func storedTransfer() *domain.Transaction {
	to := "acc-2"
	return &domain.Transaction{
		TransactionID:      "txn-1",
		OwnerID:            testOwner,
		Date:               domain.NewDate(2024, 1, 31),
		Description:        "ATM",
		Amount:             decimal.RequireFromString("30"),
		Type:               domain.Transferred,
		AccountID:          "acc-1",
		ToAccountID:        &to,
		PaidBy:             domain.DefaultPaidBy,
		Status:             domain.StatusPending,
		TransactionBalance: decimal.RequireFromString("70"),
	}
}

func (s *HandlerTestSuite) TestCreateTransaction_ReturnsSnapshotAndNames() {
	wallet := "Wallet"
	want := dto.CreateTransactionRequest{
		Date:        "2024-01-31",
		Description: "ATM",
		Amount:      "30",
		Type:        "transferred",
		Account:     "Checking",
		ToAccount:   &wallet,
	}
	s.txns.On("CreateTransaction", mock.Anything, testOwner, want).Return(storedTransfer(), nil).Once()
	s.accounts.On("ListAccounts", mock.Anything, testOwner).Return(ownedAccounts(), nil).Once()

	w := s.serve(http.MethodPost, "/api/v1/transactions",
		`{"date":"2024-01-31","description":"ATM","amount":30,"type":"transferred","account":"Checking","to_account":"Wallet"}`)

	s.Equal(http.StatusCreated, w.Code)
	var res dto.TransactionResponse
	s.decode(w, &res)
	s.Equal("txn-1", res.ID)
	s.Equal("Checking", res.Account)
	s.Equal("Wallet", res.ToAccount)
	s.Equal("70.00", res.TransactionBalance)
	s.Equal("2024-01-31", res.Date.String())
}

func (s *HandlerTestSuite) TestCreateTransaction_BindingRejects() {
	tests := map[string]string{
		"unknown type":   `{"date":"2024-01-31","amount":"5","type":"refund","account":"Checking"}`,
		"unknown status": `{"date":"2024-01-31","amount":"5","type":"debit","account":"Checking","status":"Lost"}`,
		"missing amount": `{"date":"2024-01-31","type":"debit","account":"Checking"}`,
		"object amount":  `{"date":"2024-01-31","amount":{"v":5},"type":"debit","account":"Checking"}`,
	}
	for name, body := range tests {
		s.Run(name, func() {
			w := s.serve(http.MethodPost, "/api/v1/transactions", body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.txns.AssertNotCalled(s.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlerTestSuite) TestCreateTransaction_TypeIsCaseInsensitive() {
	s.txns.On("CreateTransaction", mock.Anything, testOwner, mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
		return req.Type == "Debit"
	})).Return(nil, apperrors.ErrUnknownAccount).Once()

	w := s.serve(http.MethodPost, "/api/v1/transactions",
		`{"date":"2024-01-31","amount":"5","type":"Debit","account":"Ghost"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestListTransactions_PassesCursor() {
	token := "next-page"
	s.txns.On("ListTransactions", mock.Anything, testOwner, dto.ListTransactionsParams{Limit: 2, NextToken: &token}).
		Return([]domain.Transaction{*storedTransfer()}, &token, nil).Once()
	s.accounts.On("ListAccounts", mock.Anything, testOwner).Return(ownedAccounts(), nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/transactions?limit=2&next_token=next-page", nil)

	s.Equal(http.StatusOK, w.Code)
	var res dto.ListTransactionsResponse
	s.decode(w, &res)
	s.Require().Len(res.Transactions, 1)
	s.Require().NotNil(res.NextToken)
	s.Equal("next-page", *res.NextToken)
}

func (s *HandlerTestSuite) TestListTransactions_DefaultLimit() {
	s.txns.On("ListTransactions", mock.Anything, testOwner, dto.ListTransactionsParams{Limit: 10}).
		Return([]domain.Transaction{}, nil, nil).Once()
	s.accounts.On("ListAccounts", mock.Anything, testOwner).Return(ownedAccounts(), nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/transactions", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"transactions":[]}`, w.Body.String())
}

func (s *HandlerTestSuite) TestListTransactions_LimitOutOfRange() {
	w := s.serve(http.MethodGet, "/api/v1/transactions?limit=1000", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestFilterTransactions() {
	s.txns.On("FilterTransactions", mock.Anything, testOwner, mock.MatchedBy(func(req dto.FilterTransactionsRequest) bool {
		return req.SearchTerm == "atm" && req.DateFrom == "2024-01-01" && len(req.Accounts) == 1 && req.Accounts[0] == "Checking"
	})).Return(&domain.TransactionPage{
		Transactions: []domain.Transaction{*storedTransfer()},
		Page:         1,
		Limit:        20,
		Total:        1,
	}, nil).Once()
	s.accounts.On("ListAccounts", mock.Anything, testOwner).Return(ownedAccounts(), nil).Once()

	w := s.serve(http.MethodPost, "/api/v1/transactions/filter",
		`{"searchTerm":"atm","dateFrom":"2024-01-01","accounts":["Checking"],"type":["transferred"]}`)

	s.Equal(http.StatusOK, w.Code)
	var res dto.FilterTransactionsResponse
	s.decode(w, &res)
	s.Equal(1, res.Total)
	s.Equal(20, res.Limit)
	s.Require().Len(res.Transactions, 1)
	s.Equal("Wallet", res.Transactions[0].ToAccount)
}

func (s *HandlerTestSuite) TestFilterTransactions_BadDate() {
	s.txns.On("FilterTransactions", mock.Anything, testOwner, mock.Anything).Return(nil, apperrors.ErrValidation).Once()

	w := s.serve(http.MethodPost, "/api/v1/transactions/filter", `{"dateFrom":"31/01/2024"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestGetTransaction() {
	s.txns.On("GetTransactionByID", mock.Anything, testOwner, "txn-1").Return(storedTransfer(), nil).Once()
	s.accounts.On("ListAccounts", mock.Anything, testOwner).Return(ownedAccounts(), nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/transactions/txn-1", nil)

	s.Equal(http.StatusOK, w.Code)
	var res dto.TransactionResponse
	s.decode(w, &res)
	s.Equal("Checking", res.Account)
}

func (s *HandlerTestSuite) TestDeleteTransaction() {
	s.txns.On("DeleteTransaction", mock.Anything, testOwner, "txn-1").Return(nil).Once()
	s.txns.On("DeleteTransaction", mock.Anything, testOwner, "txn-1").Return(apperrors.ErrNotFound).Once()

	s.Equal(http.StatusNoContent, s.serve(http.MethodDelete, "/api/v1/transactions/txn-1", nil).Code)
	s.Equal(http.StatusNotFound, s.serve(http.MethodDelete, "/api/v1/transactions/txn-1", nil).Code)
}

func (s *HandlerTestSuite) TestUpdateTransactionStatus() {
	settled := storedTransfer()
	settled.Status = domain.StatusSettled
	s.txns.On("UpdateTransactionStatus", mock.Anything, testOwner, "txn-1", dto.UpdateTransactionStatusRequest{Status: "Settled"}).
		Return(settled, nil).Once()
	s.accounts.On("ListAccounts", mock.Anything, testOwner).Return(ownedAccounts(), nil).Once()

	w := s.serve(http.MethodPut, "/api/v1/transactions/txn-1/status", `{"status":"Settled"}`)

	s.Equal(http.StatusOK, w.Code)
	var res dto.TransactionResponse
	s.decode(w, &res)
	s.Equal("Settled", res.Status)
}

func (s *HandlerTestSuite) TestUpdateTransactionStatus_Invalid() {
	s.Equal(http.StatusBadRequest, s.serve(http.MethodPut, "/api/v1/transactions/txn-1/status", `{"status":"Lost"}`).Code)
	s.Equal(http.StatusBadRequest, s.serve(http.MethodPut, "/api/v1/transactions/txn-1/status", `{}`).Code)
}

func (s *HandlerTestSuite) TestUpdateTransactionStatus_NotFound() {
	s.txns.On("UpdateTransactionStatus", mock.Anything, testOwner, "missing", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	w := s.serve(http.MethodPut, "/api/v1/transactions/missing/status", `{"status":"Completed"}`)
	s.Equal(http.StatusNotFound, w.Code)
}
