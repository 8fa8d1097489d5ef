package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Both storage backends build one.
type RepositoryProvider struct {
	AccountRepo     AccountRepositoryWithTx
	TransactionRepo TransactionRepositoryWithTx
	UserRepo        UserRepositoryFacade
	ReportingRepo   ReportingRepository
}
