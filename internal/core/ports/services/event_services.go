package services

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
)

// EventPublisher delivers transaction events to interested consumers.
type EventPublisher interface {
	PublishTransactionEvent(ctx context.Context, event domain.TransactionEvent) error
}
