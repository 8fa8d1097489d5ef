package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
// Seq is assigned by the store and fixes insertion order for the running balance fold.
type Transaction struct {
	TransactionID      string          `db:"transaction_id"`
	Seq                int64           `db:"seq"`
	OwnerID            string          `db:"owner_id"`
	Date               time.Time       `db:"txn_date"`
	Description        string          `db:"description"`
	Place              string          `db:"place"`
	Amount             decimal.Decimal `db:"amount"`
	TransactionType    string          `db:"transaction_type"`
	Category           string          `db:"category"`
	AccountID          string          `db:"account_id"`
	ToAccountID        *string         `db:"to_account_id"` // Nullable
	PaidBy             string          `db:"paid_by"`
	Status             string          `db:"status"`
	TransactionBalance decimal.Decimal `db:"transaction_balance"`
	AuditFields
}
