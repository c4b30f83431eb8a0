package pgsql

import (
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LedgerRepo:    newPgxLedgerRepository(dbPool),
		MeterRepo:     newPgxMeterRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		StaffRepo:     newPgxStaffRepository(dbPool),
		IntakeRepo:    newPgxIntakeRepository(dbPool),
		RecyclingRepo: newPgxRecyclingRepository(dbPool),
		PayrollRepo:   newPgxPayrollRepository(dbPool),
		PayableRepo:   newPgxPayableRepository(dbPool),
		CostingRepo:   newPgxCostingRepository(dbPool),
		ExpenseRepo:   newPgxExpenseRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
