package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of balance-affecting transaction kinds.
type TransactionType string

const (
	Credit          TransactionType = "credit"
	Debit           TransactionType = "debit"
	DebtIncurred    TransactionType = "debt_incurred"
	Transferred     TransactionType = "transferred"
	SelfTransferred TransactionType = "self_transferred"
)

// TransactionTypes lists every valid TransactionType.
var TransactionTypes = []TransactionType{Credit, Debit, DebtIncurred, Transferred, SelfTransferred}

// ParseTransactionType matches s case-insensitively against the known types.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, s)
	}
	return t, nil
}

// IsValid reports whether t is one of the known types.
func (t TransactionType) IsValid() bool {
	switch t {
	case Credit, Debit, DebtIncurred, Transferred, SelfTransferred:
		return true
	}
	return false
}

// IsTransfer reports whether t moves money between two accounts.
func (t TransactionType) IsTransfer() bool {
	return t == Transferred || t == SelfTransferred
}

// TransactionStatus is the closed set of transaction states.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "Pending"
	StatusCompleted TransactionStatus = "Completed"
	StatusSettled   TransactionStatus = "Settled"
)

// TransactionStatuses lists every valid TransactionStatus.
var TransactionStatuses = []TransactionStatus{StatusPending, StatusCompleted, StatusSettled}

// ParseTransactionStatus matches s case-insensitively. An empty string yields StatusPending.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPending, nil
	}
	for _, st := range TransactionStatuses {
		if strings.EqualFold(string(st), s) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrValidation, s)
}

const (
	// NoAccount is the wire sentinel for "no destination account".
	NoAccount = "None"
	// DefaultPaidBy is used when a transaction does not name a payer.
	DefaultPaidBy = "Self"
)

// Transaction is one entry of an owner's ledger. Accounts are referenced by id.
type Transaction struct {
	TransactionID      string            `json:"transactionID"`
	OwnerID            string            `json:"ownerID"`
	Date               Date              `json:"date"`
	Description        string            `json:"description"`
	Place              string            `json:"place"`
	Amount             decimal.Decimal   `json:"amount"`
	Type               TransactionType   `json:"type"`
	Category           string            `json:"category"`
	AccountID          string            `json:"accountID"`
	ToAccountID        *string           `json:"toAccountID,omitempty"` // nil when not a transfer
	PaidBy             string            `json:"paidBy"`
	Status             TransactionStatus `json:"status"`
	TransactionBalance decimal.Decimal   `json:"transactionBalance"` // frozen at insert
	AuditFields
}

// ParseAmount parses a decimal amount and rejects negative or non-numeric input.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidAmount, s)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s is negative", apperrors.ErrInvalidAmount, amount.String())
	}
	return amount, nil
}

// Validate checks the invariants that do not need the account registry.
func (t Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: %s is negative", apperrors.ErrInvalidAmount, t.Amount.String())
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t.Type)
	}
	if t.AccountID == "" {
		return fmt.Errorf("%w: account is required", apperrors.ErrValidation)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	if t.Type.IsTransfer() && t.ToAccountID == nil {
		return fmt.Errorf("%w: %s requires a destination account", apperrors.ErrValidation, t.Type)
	}
	if !t.Type.IsTransfer() && t.ToAccountID != nil {
		return fmt.Errorf("%w: %s cannot have a destination account", apperrors.ErrValidation, t.Type)
	}
	return nil
}

// Touches reports whether the transaction moves money in or out of accountID.
func (t Transaction) Touches(accountID string) bool {
	if t.AccountID == accountID {
		return true
	}
	return t.ToAccountID != nil && *t.ToAccountID == accountID
}
