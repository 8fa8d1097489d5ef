package services_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) SpendingByCategory(ctx context.Context, ownerID string, from, to *domain.Date) ([]domain.CategorySpending, error) {
	args := m.Called(ctx, ownerID, from, to)
	var rows []domain.CategorySpending
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CategorySpending)
	}
	return rows, args.Error(1)
}

func (m *MockReportingRepository) MonthlySpending(ctx context.Context, ownerID string) ([]domain.MonthlySpending, error) {
	args := m.Called(ctx, ownerID)
	var rows []domain.MonthlySpending
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.MonthlySpending)
	}
	return rows, args.Error(1)
}

// --- Mock EventPublisher ---
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishTransactionEvent(ctx context.Context, event domain.TransactionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// memoryStore is an in-memory account and transaction repository. A failing
// WithinTx call restores the state it started from.
type memoryStore struct {
	mu           sync.Mutex
	accounts     []domain.Account
	txns         []domain.Transaction
	historyCalls int
	failSave     error
}

var (
	_ portsrepo.AccountRepositoryWithTx     = (*memoryStore)(nil)
	_ portsrepo.TransactionRepositoryWithTx = (*memoryStore)(nil)
)

func newMemoryStore() *memoryStore { return &memoryStore{} }

func (s *memoryStore) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	accounts := append([]domain.Account(nil), s.accounts...)
	txns := append([]domain.Transaction(nil), s.txns...)
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.accounts, s.txns = accounts, txns
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memoryStore) LockOwner(ctx context.Context, ownerID string) error { return nil }

func (s *memoryStore) FindAccountByID(ctx context.Context, ownerID, accountID string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.OwnerID == ownerID && a.AccountID == accountID {
			acc := a
			return &acc, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memoryStore) FindAccountByName(ctx context.Context, ownerID, name string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.OwnerID == ownerID && a.Name == name {
			acc := a
			return &acc, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memoryStore) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Account
	for _, a := range s.accounts {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memoryStore) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.accounts {
		if a.OwnerID == account.OwnerID && a.Name == account.Name {
			return apperrors.ErrDuplicate
		}
	}
	s.accounts = append(s.accounts, account)
	return nil
}

func (s *memoryStore) FindTransactionByID(ctx context.Context, ownerID, transactionID string) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.txns {
		if t.OwnerID == ownerID && t.TransactionID == transactionID {
			txn := t
			return &txn, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *memoryStore) ListHistory(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyCalls++
	var out []domain.Transaction
	for _, t := range s.txns {
		if t.OwnerID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memoryStore) ListAccountHistory(ctx context.Context, ownerID, accountID string) ([]domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Transaction
	for _, t := range s.txns {
		if t.OwnerID == ownerID && t.Touches(accountID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *memoryStore) ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	history, _ := s.ListHistory(ctx, ownerID)
	var out []domain.Transaction
	for i := len(history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, history[i])
	}
	return out, nil, nil
}

func (s *memoryStore) FilterTransactions(ctx context.Context, ownerID string, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	history, _ := s.ListHistory(ctx, ownerID)
	var matches []domain.Transaction
	for i := len(history) - 1; i >= 0; i-- {
		t := history[i]
		if filter.SearchTerm != "" && !strings.Contains(strings.ToLower(t.Description), strings.ToLower(filter.SearchTerm)) {
			continue
		}
		if len(filter.AccountIDs) > 0 && !containsString(filter.AccountIDs, t.AccountID) {
			continue
		}
		matches = append(matches, t)
	}
	total := len(matches)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.Limit
	if end > total {
		end = total
	}
	return matches[start:end], total, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (s *memoryStore) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave != nil {
		return s.failSave
	}
	s.txns = append(s.txns, txn)
	return nil
}

func (s *memoryStore) DeleteTransaction(ctx context.Context, ownerID, transactionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.txns {
		if t.OwnerID == ownerID && t.TransactionID == transactionID {
			s.txns = append(s.txns[:i], s.txns[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

func (s *memoryStore) UpdateTransactionStatus(ctx context.Context, ownerID, transactionID string, status domain.TransactionStatus, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.txns {
		if t.OwnerID == ownerID && t.TransactionID == transactionID {
			s.txns[i].Status = status
			s.txns[i].LastUpdatedAt = now
			s.txns[i].LastUpdatedBy = userID
			return nil
		}
	}
	return apperrors.ErrNotFound
}
