package domain

import "github.com/shopspring/decimal"

// Account is a named bucket of money owned by one user. Names are unique per owner.
type Account struct {
	AccountID string `json:"accountID"`
	OwnerID   string `json:"ownerID"`
	Name      string `json:"name"`
	Kind      string `json:"kind"` // free-form, e.g. "personal" or "friend"
	AuditFields
}

// AccountBalance pairs an account with its aggregate balance.
type AccountBalance struct {
	Account Account
	Balance decimal.Decimal
}

const (
	openingBalanceLabel    = "Opening Balance"
	openingBalanceCategory = "Initial Balance"
)

// NewOpeningTransaction builds the synthetic transaction recorded when an account
// is created with a non-zero initial balance. It returns nil for a zero balance.
// A positive balance becomes a credit, a negative one a debit of its absolute value.
func NewOpeningTransaction(account Account, initial decimal.Decimal, on Date) *Transaction {
	if initial.IsZero() {
		return nil
	}
	txnType := Credit
	if initial.IsNegative() {
		txnType = Debit
	}
	return &Transaction{
		OwnerID:     account.OwnerID,
		Date:        on,
		Description: openingBalanceLabel,
		Place:       openingBalanceLabel,
		Amount:      initial.Abs(),
		Type:        txnType,
		Category:    openingBalanceCategory,
		AccountID:   account.AccountID,
		PaidBy:      DefaultPaidBy,
		Status:      StatusPending,
	}
}
