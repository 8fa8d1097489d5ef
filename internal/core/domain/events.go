package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEventType names what happened to a transaction.
type TransactionEventType string

const (
	EventTransactionCreated       TransactionEventType = "transaction.created"
	EventTransactionDeleted       TransactionEventType = "transaction.deleted"
	EventTransactionStatusChanged TransactionEventType = "transaction.status_changed"
)

// TransactionEvent is published after a transaction write commits.
type TransactionEvent struct {
	Type               TransactionEventType `json:"type"`
	OwnerID            string               `json:"owner_id"`
	TransactionID      string               `json:"transaction_id"`
	AccountID          string               `json:"account_id,omitempty"`
	Amount             *decimal.Decimal     `json:"amount,omitempty"`
	TransactionBalance *decimal.Decimal     `json:"transaction_balance,omitempty"`
	Status             TransactionStatus    `json:"status,omitempty"`
	Timestamp          time.Time            `json:"timestamp"`
}

// NewCreatedEvent describes a freshly inserted transaction.
func NewCreatedEvent(t Transaction, at time.Time) TransactionEvent {
	amount := t.Amount
	balance := t.TransactionBalance
	return TransactionEvent{
		Type:               EventTransactionCreated,
		OwnerID:            t.OwnerID,
		TransactionID:      t.TransactionID,
		AccountID:          t.AccountID,
		Amount:             &amount,
		TransactionBalance: &balance,
		Status:             t.Status,
		Timestamp:          at,
	}
}
