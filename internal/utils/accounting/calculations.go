package accounting

import (
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the effect of txn on its own source account.
// Credits add; debits, debts and outgoing transfers subtract.
func CalculateSignedAmount(txn domain.Transaction) decimal.Decimal {
	if txn.Type == domain.Credit {
		return txn.Amount
	}
	return txn.Amount.Neg()
}

// destinationOf returns the transfer destination of txn, or "" when it has none.
func destinationOf(txn domain.Transaction) string {
	if !txn.Type.IsTransfer() || txn.ToAccountID == nil {
		return ""
	}
	return *txn.ToAccountID
}

// Effect returns the signed change txn makes to accountID under double-entry rules.
// A transfer whose source and destination are both accountID nets to zero.
func Effect(txn domain.Transaction, accountID string) decimal.Decimal {
	effect := decimal.Zero
	if txn.AccountID == accountID {
		effect = CalculateSignedAmount(txn)
	}
	if destinationOf(txn) == accountID {
		effect = effect.Add(txn.Amount)
	}
	return effect
}
