package services

import (
	portsrepo "github.com/SscSPs/expense_manager_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
	"github.com/SscSPs/expense_manager_backend/internal/platform/config"
	"github.com/prometheus/client_golang/prometheus"
)

// NewServiceContainer wires every service over one storage backend.
// The account and transaction services share one OwnerLocks table so account
// creation and inserts for an owner never interleave. reg may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, publisher portssvc.EventPublisher, reg prometheus.Registerer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}
	locks := NewOwnerLocks()

	container.Balance = NewBalanceService(
		repos.AccountRepo,
		repos.TransactionRepo,
		WithBalanceCache(cfg.BalanceCacheSize, cfg.BalanceCacheTTL),
	)

	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.TransactionRepo,
		WithAccountOwnerLocks(locks),
		WithAccountBalanceCache(container.Balance),
		WithAccountEventPublisher(publisher),
	)

	txnOptions := []TransactionServiceOption{
		WithTransactionOwnerLocks(locks),
		WithTransactionBalanceCache(container.Balance),
		WithTransactionEventPublisher(publisher),
		WithDefaultListLimit(cfg.DefaultPageLimit),
	}
	if reg != nil {
		inserted := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "expense_manager",
			Name:      "transactions_inserted_total",
			Help:      "Transactions inserted, by type.",
		}, []string{"type"})
		reg.MustRegister(inserted)
		txnOptions = append(txnOptions, WithInsertCounter(inserted))
	}
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, txnOptions...)

	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg)

	return container
}
