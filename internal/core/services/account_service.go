package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_manager_backend/internal/apperrors"
	"github.com/SscSPs/expense_manager_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
	"github.com/SscSPs/expense_manager_backend/internal/dto"
	"github.com/SscSPs/expense_manager_backend/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryWithTx
	txnRepo     portsrepo.TransactionWriter
	locks       *OwnerLocks
	balances    portssvc.BalanceSvc
	publisher   portssvc.EventPublisher
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountOwnerLocks shares the per-owner write locks with the transaction service.
func WithAccountOwnerLocks(locks *OwnerLocks) AccountServiceOption {
	return func(s *accountService) {
		s.locks = locks
	}
}

// WithAccountBalanceCache makes account creation invalidate cached balances.
func WithAccountBalanceCache(balances portssvc.BalanceSvc) AccountServiceOption {
	return func(s *accountService) {
		s.balances = balances
	}
}

// WithAccountEventPublisher publishes opening-balance transactions.
func WithAccountEventPublisher(p portssvc.EventPublisher) AccountServiceOption {
	return func(s *accountService) {
		s.publisher = p
	}
}

// WithAccountClock overrides time.Now.
func WithAccountClock(now func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.now = now
	}
}

// NewAccountService creates a new account service with the provided options.
// txnRepo stores the opening transaction and must share accountRepo's database.
func NewAccountService(accountRepo portsrepo.AccountRepositoryWithTx, txnRepo portsrepo.TransactionWriter, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.locks == nil {
		svc.locks = NewOwnerLocks()
	}
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func parseInitialBalance(raw *dto.Amount) (decimal.Decimal, error) {
	if raw == nil || strings.TrimSpace(raw.String()) == "" {
		return decimal.Zero, nil
	}
	initial, err := decimal.NewFromString(strings.TrimSpace(raw.String()))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: initial balance %q is not a number", apperrors.ErrInvalidAmount, raw.String())
	}
	return initial, nil
}

// CreateAccount persists the account and its opening transaction atomically.
func (s *accountService) CreateAccount(ctx context.Context, ownerID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: account name is required", apperrors.ErrValidation)
	}
	initial, err := parseInitialBalance(req.InitialBalance)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		OwnerID:     ownerID,
		Name:        name,
		Kind:        strings.TrimSpace(req.Type),
		AuditFields: newAuditFields(ownerID, now),
	}

	opening := domain.NewOpeningTransaction(account, initial, domain.DateFromTime(now))
	if opening != nil {
		opening.TransactionID = uuid.NewString()
		opening.AuditFields = newAuditFields(ownerID, now)
		opening.TransactionBalance = accounting.RunningBalance(nil, *opening)
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	err = s.accountRepo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.accountRepo.LockOwner(ctx, ownerID); err != nil {
			return err
		}
		if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
			return err
		}
		if opening != nil {
			return s.txnRepo.SaveTransaction(ctx, *opening)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("account_name", name),
			slog.String("owner_id", ownerID))
		return nil, err
	}

	if s.balances != nil {
		s.balances.Invalidate(ownerID)
	}
	if opening != nil && s.publisher != nil {
		if err := s.publisher.PublishTransactionEvent(ctx, domain.NewCreatedEvent(*opening, now)); err != nil {
			s.LogError(ctx, err, "Failed to publish opening balance event", slog.String("transaction_id", opening.TransactionID))
		}
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.Bool("opening_balance", opening != nil))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, ownerID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount always fails; transactions reference accounts and nothing cascades.
func (s *accountService) DeleteAccount(ctx context.Context, ownerID string, accountID string) error {
	return fmt.Errorf("%w: account deletion", apperrors.ErrNotImplemented)
}
