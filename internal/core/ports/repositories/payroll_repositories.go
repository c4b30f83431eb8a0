package repositories

import (
	"context"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PayrollReader defines read operations for accruals and salary payments.
type PayrollReader interface {
	ListAccruals(ctx context.Context) ([]domain.PayrollAccrual, error)
	FindAccrualByStaff(ctx context.Context, staffID string) (*domain.PayrollAccrual, error)
	ListSalaryPayments(ctx context.Context, limit int, offset int) ([]domain.SalaryPayment, error)

	// SummarizeSalaries returns accrued and paid totals per role.
	SummarizeSalaries(ctx context.Context) ([]domain.RoleSalarySummary, error)
}

// PayrollTransactionSupport defines accrual mutations run inside a caller's transaction.
type PayrollTransactionSupport interface {
	// UpsertAccrualInTx creates the staff member's accrual at zero if missing,
	// adds change.Delta and returns the updated row.
	UpsertAccrualInTx(ctx context.Context, tx pgx.Tx, change domain.AccrualChange, now time.Time) (*domain.PayrollAccrual, error)

	// DecrementAccrualInTx subtracts amount from an existing accrual. It returns
	// ErrNotFound without creating a row when the staff member has no accrual.
	DecrementAccrualInTx(ctx context.Context, tx pgx.Tx, staffID string, amount decimal.Decimal, now time.Time) (*domain.PayrollAccrual, error)

	SaveSalaryPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SalaryPayment) error
}

type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollTransactionSupport
}

type PayrollRepositoryWithTx interface {
	PayrollRepositoryFacade
	TransactionManager
}
