package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func checking() *domain.Account {
	return &domain.Account{
		AccountID:   "acc-1",
		OwnerID:     testOwner,
		Name:        "Checking",
		Kind:        "personal",
		AuditFields: domain.AuditFields{CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func (s *HandlerTestSuite) TestCreateAccount_Success() {
	initial := dto.Amount("500.00")
	want := dto.CreateAccountRequest{Name: "Checking", Type: "personal", InitialBalance: &initial}
	s.accounts.On("CreateAccount", mock.Anything, testOwner, want).Return(checking(), nil).Once()

	w := s.serve(http.MethodPost, "/api/v1/accounts", `{"name":"Checking","type":"personal","initial_balance":500.00}`)

	s.Equal(http.StatusCreated, w.Code)
	var res dto.AccountResponse
	s.decode(w, &res)
	s.Equal("acc-1", res.ID)
	s.Equal("Checking", res.Name)
	s.Equal("personal", res.Type)
}

func (s *HandlerTestSuite) TestCreateAccount_MissingName() {
	w := s.serve(http.MethodPost, "/api/v1/accounts", `{"type":"personal"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestCreateAccount_ServiceErrors() {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"duplicate name", fmt.Errorf("%w: account %q", apperrors.ErrDuplicate, "Checking"), http.StatusConflict},
		{"invalid amount", apperrors.ErrInvalidAmount, http.StatusBadRequest},
		{"store failure", apperrors.NewAppError(500, "begin transaction", fmt.Errorf("connection reset")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.accounts.On("CreateAccount", mock.Anything, testOwner, mock.Anything).Return(nil, tt.err).Once()

			w := s.serve(http.MethodPost, "/api/v1/accounts", map[string]string{"name": "Checking", "type": "personal"})

			s.Equal(tt.status, w.Code)
			var res map[string]string
			s.decode(w, &res)
			if tt.status == http.StatusInternalServerError {
				s.Equal("Failed to create account", res["error"])
			} else {
				s.Contains(res["error"], tt.err.Error())
			}
		})
	}
}

func (s *HandlerTestSuite) TestListAccounts_CarriesBalances() {
	wallet := domain.Account{AccountID: "acc-2", Name: "Wallet", Kind: "cash"}
	s.balances.On("GetBalances", mock.Anything, testOwner).Return([]domain.AccountBalance{
		{Account: *checking(), Balance: decimal.RequireFromString("70")},
		{Account: wallet, Balance: decimal.RequireFromString("30.5")},
	}, nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/accounts", nil)

	s.Equal(http.StatusOK, w.Code)
	var res []dto.AccountResponse
	s.decode(w, &res)
	s.Require().Len(res, 2)
	s.Equal("Checking", res[0].Name)
	s.Equal("70.00", *res[0].Balance)
	s.Equal("30.50", *res[1].Balance)
}

func (s *HandlerTestSuite) TestGetAccount_NotFound() {
	s.accounts.On("GetAccountByID", mock.Anything, testOwner, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := s.serve(http.MethodGet, "/api/v1/accounts/missing", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestDeleteAccount_NotImplemented() {
	s.accounts.On("DeleteAccount", mock.Anything, testOwner, "acc-1").Return(apperrors.ErrNotImplemented).Once()

	w := s.serve(http.MethodDelete, "/api/v1/accounts/acc-1", nil)
	s.Equal(http.StatusNotImplemented, w.Code)
}
