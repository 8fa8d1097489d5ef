package domain_test

import (
	"testing"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.TransactionType
		wantErr bool
	}{
		{in: "credit", want: domain.Credit},
		{in: "Debit", want: domain.Debit},
		{in: " DEBT_INCURRED ", want: domain.DebtIncurred},
		{in: "transferred", want: domain.Transferred},
		{in: "Self_Transferred", want: domain.SelfTransferred},
		{in: "refund", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParseTransactionType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTransactionStatus(t *testing.T) {
	st, err := domain.ParseTransactionStatus("")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, st)

	st, err = domain.ParseTransactionStatus("completed")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, st)

	_, err = domain.ParseTransactionStatus("Done")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseAmount(t *testing.T) {
	amount, err := domain.ParseAmount("12.50")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("12.5")))

	_, err = domain.ParseAmount("-1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	_, err = domain.ParseAmount("twelve")
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

func TestTransaction_Validate(t *testing.T) {
	day := domain.NewDate(2024, 3, 1)
	base := domain.Transaction{
		AccountID: "acc-1",
		Amount:    decimal.NewFromInt(10),
		Type:      domain.Debit,
		Date:      day,
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Transaction)
		wantErr error
	}{
		{name: "valid debit", mutate: func(*domain.Transaction) {}},
		{name: "zero amount allowed", mutate: func(t *domain.Transaction) { t.Amount = decimal.Zero }},
		{name: "negative amount", mutate: func(t *domain.Transaction) { t.Amount = decimal.NewFromInt(-1) }, wantErr: apperrors.ErrInvalidAmount},
		{name: "unknown type", mutate: func(t *domain.Transaction) { t.Type = "refund" }, wantErr: apperrors.ErrValidation},
		{name: "missing account", mutate: func(t *domain.Transaction) { t.AccountID = "" }, wantErr: apperrors.ErrValidation},
		{name: "missing date", mutate: func(t *domain.Transaction) { t.Date = domain.Date{} }, wantErr: apperrors.ErrValidation},
		{
			name:    "transfer without destination",
			mutate:  func(t *domain.Transaction) { t.Type = domain.Transferred },
			wantErr: apperrors.ErrValidation,
		},
		{
			name: "self transfer to same account",
			mutate: func(t *domain.Transaction) {
				t.Type = domain.SelfTransferred
				t.ToAccountID = stringPtr("acc-1")
			},
		},
		{
			name:    "debit with destination",
			mutate:  func(t *domain.Transaction) { t.ToAccountID = stringPtr("acc-2") },
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := base
			tt.mutate(&txn)
			err := txn.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewOpeningTransaction(t *testing.T) {
	acc := domain.Account{AccountID: "acc-1", OwnerID: "user-1", Name: "Checking"}
	day := domain.NewDate(2024, 1, 15)

	assert.Nil(t, domain.NewOpeningTransaction(acc, decimal.Zero, day))

	credit := domain.NewOpeningTransaction(acc, decimal.NewFromInt(500), day)
	require.NotNil(t, credit)
	assert.Equal(t, domain.Credit, credit.Type)
	assert.True(t, credit.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, "Opening Balance", credit.Description)
	assert.Equal(t, "Opening Balance", credit.Place)
	assert.Equal(t, "Initial Balance", credit.Category)
	assert.Equal(t, domain.StatusPending, credit.Status)
	assert.Equal(t, "user-1", credit.OwnerID)
	assert.Equal(t, day, credit.Date)

	debit := domain.NewOpeningTransaction(acc, decimal.RequireFromString("-42.10"), day)
	require.NotNil(t, debit)
	assert.Equal(t, domain.Debit, debit.Type)
	assert.True(t, debit.Amount.Equal(decimal.RequireFromString("42.10")))
}
