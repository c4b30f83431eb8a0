package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LedgerRepo    LedgerRepositoryWithTx
	MeterRepo     MeterRepositoryWithTx
	CustomerRepo  CustomerRepositoryFacade
	StaffRepo     StaffRepositoryFacade
	IntakeRepo    IntakeRepositoryFacade
	RecyclingRepo RecyclingRepositoryWithTx
	PayrollRepo   PayrollRepositoryWithTx
	PayableRepo   PayableRepositoryWithTx
	CostingRepo   CostingRepositoryFacade
	ExpenseRepo   ExpenseRepositoryWithTx
	ReportingRepo ReportingRepository
}
