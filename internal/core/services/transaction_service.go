package services

import (
	"context"
	"errors"
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const defaultListLimit = 10

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryWithTx
	accountRepo portsrepo.AccountReader
	locks       *OwnerLocks
	balances    portssvc.BalanceSvc
	publisher   portssvc.EventPublisher
	inserted    *prometheus.CounterVec
	listLimit   int
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionOwnerLocks shares the per-owner write locks with the account service.
func WithTransactionOwnerLocks(locks *OwnerLocks) TransactionServiceOption {
	return func(s *transactionService) {
		s.locks = locks
	}
}

// WithTransactionBalanceCache makes writes invalidate cached balances.
func WithTransactionBalanceCache(balances portssvc.BalanceSvc) TransactionServiceOption {
	return func(s *transactionService) {
		s.balances = balances
	}
}

// WithTransactionEventPublisher publishes an event after every committed write.
func WithTransactionEventPublisher(p portssvc.EventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.publisher = p
	}
}

// WithInsertCounter counts inserted transactions by type.
// The counter must have exactly one label, the transaction type.
func WithInsertCounter(c *prometheus.CounterVec) TransactionServiceOption {
	return func(s *transactionService) {
		s.inserted = c
	}
}

// WithDefaultListLimit sets the page size used when a list request omits it.
func WithDefaultListLimit(limit int) TransactionServiceOption {
	return func(s *transactionService) {
		if limit > 0 {
			s.listLimit = limit
		}
	}
}

// WithTransactionClock overrides time.Now.
func WithTransactionClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryWithTx, accountRepo portsrepo.AccountReader, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		listLimit:   defaultListLimit,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.locks == nil {
		svc.locks = NewOwnerLocks()
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveAccount maps an account name to the owner's account. A missing name is ErrUnknownAccount.
func (s *transactionService) resolveAccount(ctx context.Context, ownerID, name string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByName(ctx, ownerID, strings.TrimSpace(name))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownAccount, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve account %q: %w", name, err)
	}
	return account, nil
}

func hasDestination(toAccount *string) bool {
	if toAccount == nil {
		return false
	}
	name := strings.TrimSpace(*toAccount)
	return name != "" && !strings.EqualFold(name, domain.NoAccount)
}

// CreateTransaction computes the running balance snapshot under the owner's lock and stores it.
func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txnType, err := domain.ParseTransactionType(req.Type)
	if err != nil {
		return nil, err
	}
	amount, err := domain.ParseAmount(req.Amount.String())
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(strings.TrimSpace(req.Date))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	status, err := domain.ParseTransactionStatus(req.Status)
	if err != nil {
		return nil, err
	}
	paidBy := strings.TrimSpace(req.PaidBy)
	if paidBy == "" {
		paidBy = domain.DefaultPaidBy
	}

	now := s.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		Date:          date,
		Description:   req.Description,
		Place:         req.Place,
		Amount:        amount,
		Type:          txnType,
		Category:      req.Category,
		PaidBy:        paidBy,
		Status:        status,
		AuditFields:   newAuditFields(ownerID, now),
	}

	unlock := s.locks.Lock(ownerID)
	defer unlock()

	err = s.txnRepo.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.txnRepo.LockOwner(ctx, ownerID); err != nil {
			return err
		}

		source, err := s.resolveAccount(ctx, ownerID, req.Account)
		if err != nil {
			return err
		}
		txn.AccountID = source.AccountID

		if hasDestination(req.ToAccount) {
			dest, err := s.resolveAccount(ctx, ownerID, *req.ToAccount)
			if err != nil {
				return err
			}
			txn.ToAccountID = &dest.AccountID
		}

		if err := txn.Validate(); err != nil {
			return err
		}

		prior, err := s.txnRepo.ListAccountHistory(ctx, ownerID, txn.AccountID)
		if err != nil {
			return fmt.Errorf("failed to load account history: %w", err)
		}
		txn.TransactionBalance = accounting.RunningBalance(prior, txn)

		return s.txnRepo.SaveTransaction(ctx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction",
			slog.String("owner_id", ownerID),
			slog.String("type", string(txnType)))
		return nil, err
	}

	if s.inserted != nil {
		s.inserted.WithLabelValues(string(txn.Type)).Inc()
	}
	s.afterWrite(ctx, ownerID, domain.NewCreatedEvent(txn, now))

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("transaction_balance", txn.TransactionBalance.String()))
	return &txn, nil
}

// afterWrite drops cached balances and publishes the event. Publish failures are only logged.
func (s *transactionService) afterWrite(ctx context.Context, ownerID string, event domain.TransactionEvent) {
	if s.balances != nil {
		s.balances.Invalidate(ownerID)
	}
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTransactionEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish transaction event",
			slog.String("event_type", string(event.Type)),
			slog.String("transaction_id", event.TransactionID))
	}
}

func (s *transactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = s.listLimit
	}
	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, ownerID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID))
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nextToken, nil
}

func parseOptionalDate(raw string) (*domain.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return &d, nil
}

func parseOptionalAmount(raw *dto.Amount) (*decimal.Decimal, error) {
	if raw == nil || strings.TrimSpace(raw.String()) == "" {
		return nil, nil
	}
	amount, err := domain.ParseAmount(raw.String())
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

// FilterTransactions resolves account names and runs the search.
// Names the owner does not have match nothing.
func (s *transactionService) FilterTransactions(ctx context.Context, ownerID string, req dto.FilterTransactionsRequest) (*domain.TransactionPage, error) {
	filter := domain.TransactionFilter{
		Page:       req.Page,
		Limit:      req.Limit,
		SearchTerm: strings.TrimSpace(req.SearchTerm),
		Categories: req.Categories,
	}
	filter.Normalize()

	var err error
	if filter.DateFrom, err = parseOptionalDate(req.DateFrom); err != nil {
		return nil, err
	}
	if filter.DateTo, err = parseOptionalDate(req.DateTo); err != nil {
		return nil, err
	}
	if filter.MinAmount, err = parseOptionalAmount(req.MinAmount); err != nil {
		return nil, err
	}
	if filter.MaxAmount, err = parseOptionalAmount(req.MaxAmount); err != nil {
		return nil, err
	}
	for _, raw := range req.Types {
		t, err := domain.ParseTransactionType(raw)
		if err != nil {
			return nil, err
		}
		filter.Types = append(filter.Types, t)
	}

	empty := &domain.TransactionPage{Transactions: []domain.Transaction{}, Page: filter.Page, Limit: filter.Limit}
	if len(req.Accounts) > 0 {
		accounts, err := s.accountRepo.ListAccounts(ctx, ownerID)
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		byName := make(map[string]string, len(accounts))
		for _, acc := range accounts {
			byName[acc.Name] = acc.AccountID
		}
		for _, name := range req.Accounts {
			if id, ok := byName[name]; ok {
				filter.AccountIDs = append(filter.AccountIDs, id)
			}
		}
		if len(filter.AccountIDs) == 0 {
			return empty, nil
		}
	}

	txns, total, err := s.txnRepo.FilterTransactions(ctx, ownerID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to filter transactions", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to filter transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return &domain.TransactionPage{Transactions: txns, Page: filter.Page, Limit: filter.Limit, Total: total}, nil
}

// DeleteTransaction removes the transaction. Snapshots of later transactions keep their values.
func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return err
	}
	if err := s.txnRepo.DeleteTransaction(ctx, ownerID, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return err
	}

	amount := txn.Amount
	s.afterWrite(ctx, ownerID, domain.TransactionEvent{
		Type:          domain.EventTransactionDeleted,
		OwnerID:       ownerID,
		TransactionID: transactionID,
		AccountID:     txn.AccountID,
		Amount:        &amount,
		Timestamp:     s.Now(),
	})
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// UpdateTransactionStatus changes only the status; the balance snapshot is untouched.
func (s *transactionService) UpdateTransactionStatus(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionStatusRequest) (*domain.Transaction, error) {
	status, err := domain.ParseTransactionStatus(req.Status)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	if err := s.txnRepo.UpdateTransactionStatus(ctx, ownerID, transactionID, status, ownerID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update transaction status", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishTransactionEvent(ctx, domain.TransactionEvent{
			Type:          domain.EventTransactionStatusChanged,
			OwnerID:       ownerID,
			TransactionID: transactionID,
			AccountID:     txn.AccountID,
			Status:        status,
			Timestamp:     now,
		}); err != nil {
			s.LogError(ctx, err, "Failed to publish transaction event", slog.String("transaction_id", transactionID))
		}
	}
	return txn, nil
}

// AuditSnapshots replays the owner's history and reports snapshots that no longer match.
func (s *transactionService) AuditSnapshots(ctx context.Context, ownerID string) ([]domain.SnapshotDrift, error) {
	history, err := s.txnRepo.ListHistory(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return accounting.AuditSnapshots(history), nil
}
