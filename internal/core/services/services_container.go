package services

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// handle is the ledger account resolved at startup; every service that moves
// money posts to it.
func NewServiceContainer(repos portsrepo.RepositoryProvider, handle domain.LedgerHandle) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:   NewLedgerService(repos.LedgerRepo, handle),
		Metering: NewMeteringService(repos.MeterRepo),
		Party:    NewPartyService(repos.CustomerRepo, repos.StaffRepo),
		Intake:   NewIntakeService(repos.IntakeRepo, repos.CustomerRepo),
		Recycling: NewRecyclingService(
			repos.RecyclingRepo,
			repos.MeterRepo,
			repos.IntakeRepo,
			repos.StaffRepo,
			repos.PayrollRepo,
			repos.PayableRepo,
		),
		Payroll:   NewPayrollService(repos.PayrollRepo, repos.StaffRepo, repos.LedgerRepo, handle),
		Payable:   NewPayableService(repos.PayableRepo, repos.CustomerRepo),
		Costing:   NewCostingService(repos.CostingRepo),
		Expense:   NewExpenseService(repos.ExpenseRepo, repos.LedgerRepo, handle),
		Reporting: NewReportingService(repos.ReportingRepo, repos.RecyclingRepo, repos.IntakeRepo),
	}
}
