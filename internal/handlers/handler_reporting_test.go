package handlers_test

import (
	"net/http"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (s *HandlerTestSuite) TestBalances() {
	s.balances.On("GetBalances", mock.Anything, testOwner).Return([]domain.AccountBalance{
		{Account: domain.Account{Name: "Checking"}, Balance: decimal.RequireFromString("70")},
		{Account: domain.Account{Name: "Wallet"}, Balance: decimal.RequireFromString("30")},
	}, nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/balances", nil)

	s.Equal(http.StatusOK, w.Code)
	var res dto.BalancesResponse
	s.decode(w, &res)
	s.Equal(map[string]string{"Checking": "70.00", "Wallet": "30.00"}, res.Balances)
	s.Equal("USD", res.Currency)
	s.Equal("$30.00", res.Display["Wallet"])
}

func (s *HandlerTestSuite) TestSpendingByCategory() {
	from := domain.NewDate(2024, 1, 1)
	to := domain.NewDate(2024, 1, 31)
	s.reporting.On("SpendingByCategory", mock.Anything, testOwner, &from, &to).Return([]domain.CategorySpending{
		{Category: "Food", Amount: decimal.RequireFromString("15")},
	}, nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/spending/category?start_date=2024-01-01&end_date=2024-01-31", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"category":"Food","amount":"15.00"}]`, w.Body.String())
}

func (s *HandlerTestSuite) TestSpendingByCategory_OpenRange() {
	s.reporting.On("SpendingByCategory", mock.Anything, testOwner, (*domain.Date)(nil), (*domain.Date)(nil)).
		Return([]domain.CategorySpending{}, nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/spending/category", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[]`, w.Body.String())
}

func (s *HandlerTestSuite) TestSpendingByCategory_BadDates() {
	s.Equal(http.StatusBadRequest, s.serve(http.MethodGet, "/api/v1/spending/category?start_date=01-2024", nil).Code)

	s.reporting.On("SpendingByCategory", mock.Anything, testOwner, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()
	w := s.serve(http.MethodGet, "/api/v1/spending/category?start_date=2024-02-01&end_date=2024-01-01", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlerTestSuite) TestMonthlySpending() {
	s.reporting.On("MonthlySpending", mock.Anything, testOwner).Return([]domain.MonthlySpending{
		{Month: "2024-01", Amount: decimal.RequireFromString("5")},
		{Month: "2024-02", Amount: decimal.RequireFromString("17")},
	}, nil).Once()

	w := s.serve(http.MethodGet, "/api/v1/spending/monthly", nil)

	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`[{"month":"2024-01","amount":"5.00"},{"month":"2024-02","amount":"17.00"}]`, w.Body.String())
}
