package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
	"github.com/SscSPs/expense_manager_backend/internal/utils/accounting"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/errgroup"
)

// balanceService folds the owner's history into aggregate balances, optionally caching the result.
type balanceService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
	cache       *expirable.LRU[string, []domain.AccountBalance]

	// mu orders Invalidate against storeIfCurrent, so a result computed before
	// a concurrent Invalidate is never cached.
	mu          sync.Mutex
	generations map[string]uint64
}

// BalanceServiceOption is a functional option for configuring the balance service
type BalanceServiceOption func(*balanceService)

// WithBalanceCache caches up to size owners for ttl. A non-positive size disables caching.
func WithBalanceCache(size int, ttl time.Duration) BalanceServiceOption {
	return func(s *balanceService) {
		if size > 0 {
			s.cache = expirable.NewLRU[string, []domain.AccountBalance](size, nil, ttl)
		}
	}
}

// NewBalanceService creates a new balance service with the provided options
func NewBalanceService(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader, options ...BalanceServiceOption) portssvc.BalanceSvc {
	svc := &balanceService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		generations: make(map[string]uint64),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) generation(ownerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[ownerID]
}

// Invalidate drops the owner's cached balances.
func (s *balanceService) Invalidate(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[ownerID]++
	if s.cache != nil {
		s.cache.Remove(ownerID)
	}
}

// storeIfCurrent caches result unless the owner was invalidated since gen was read.
func (s *balanceService) storeIfCurrent(ownerID string, gen uint64, result []domain.AccountBalance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generations[ownerID] != gen {
		return
	}
	s.cache.Add(ownerID, append([]domain.AccountBalance(nil), result...))
}

// GetBalances loads accounts and history concurrently and folds them.
func (s *balanceService) GetBalances(ctx context.Context, ownerID string) ([]domain.AccountBalance, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ownerID); ok {
			s.LogDebug(ctx, "Balance cache hit", slog.String("owner_id", ownerID))
			return append([]domain.AccountBalance(nil), cached...), nil
		}
	}
	gen := s.generation(ownerID)

	var (
		accounts []domain.Account
		history  []domain.Transaction
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		accounts, err = s.accountRepo.ListAccounts(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.txnRepo.ListHistory(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load balances", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load balances: %w", err)
	}

	totals := accounting.AggregateBalances(accounts, history)
	result := make([]domain.AccountBalance, len(accounts))
	for i, acc := range accounts {
		result[i] = domain.AccountBalance{Account: acc, Balance: totals[acc.AccountID]}
	}

	if s.cache != nil {
		s.storeIfCurrent(ownerID, gen, result)
	}
	return result, nil
}
