package services

import (
	"context"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
)

// BalanceSvc computes aggregate balances.
type BalanceSvc interface {
	// GetBalances returns every account of the owner with its aggregate balance, ordered by name.
	GetBalances(ctx context.Context, ownerID string) ([]domain.AccountBalance, error)

	// Invalidate drops any cached balances of the owner.
	Invalidate(ownerID string)
}
