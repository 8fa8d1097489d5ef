package domain

import "github.com/shopspring/decimal"

// CategorySpending is the total debited for one category.
type CategorySpending struct {
	Category string
	Amount   decimal.Decimal
}

// MonthlySpending is the total debited in one YYYY-MM month.
type MonthlySpending struct {
	Month  string
	Amount decimal.Decimal
}

// SnapshotDrift describes a stored running balance that no longer matches the history.
type SnapshotDrift struct {
	TransactionID string
	AccountID     string
	Stored        decimal.Decimal
	Recomputed    decimal.Decimal
}
