package accounting

import (
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RunningBalance computes the snapshot stored on txn at insert time: the balance of
// txn's source account after folding prior (oldest first) and then txn itself.
// prior may contain transactions that do not touch the account; they contribute zero.
func RunningBalance(prior []domain.Transaction, txn domain.Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, p := range prior {
		balance = balance.Add(Effect(p, txn.AccountID))
	}
	return balance.Add(Effect(txn, txn.AccountID))
}

// AggregateBalances folds the whole history into a balance per account id.
// Every account in accounts is present in the result, starting at zero.
// The fold is order independent.
func AggregateBalances(accounts []domain.Account, history []domain.Transaction) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(accounts))
	for _, acc := range accounts {
		balances[acc.AccountID] = decimal.Zero
	}
	for _, txn := range history {
		apply(balances, txn)
	}
	return balances
}

func apply(balances map[string]decimal.Decimal, txn domain.Transaction) {
	balances[txn.AccountID] = balances[txn.AccountID].Add(CalculateSignedAmount(txn))
	if to := destinationOf(txn); to != "" {
		balances[to] = balances[to].Add(txn.Amount)
	}
}

// AuditSnapshots recomputes the running balance of every transaction in history
// (oldest first) and reports those whose stored snapshot differs.
// Differences appear after earlier transactions were deleted; nothing is rewritten.
func AuditSnapshots(history []domain.Transaction) []domain.SnapshotDrift {
	running := make(map[string]decimal.Decimal)
	var drifts []domain.SnapshotDrift
	for _, txn := range history {
		expected := running[txn.AccountID].Add(Effect(txn, txn.AccountID))
		if !expected.Equal(txn.TransactionBalance) {
			drifts = append(drifts, domain.SnapshotDrift{
				TransactionID: txn.TransactionID,
				AccountID:     txn.AccountID,
				Stored:        txn.TransactionBalance,
				Recomputed:    expected,
			})
		}
		apply(running, txn)
	}
	return drifts
}
