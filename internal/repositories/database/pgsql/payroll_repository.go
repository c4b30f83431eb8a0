package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(pool *pgxpool.Pool) portsrepo.PayrollRepositoryWithTx {
	return &PgxPayrollRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayrollRepositoryWithTx = (*PgxPayrollRepository)(nil)

const accrualColumns = `staff_id, role, accrued_amount, last_updated_at`

func scanAccrual(row pgx.Row) (*domain.PayrollAccrual, error) {
	var m models.PayrollAccrual
	if err := row.Scan(&m.StaffID, &m.Role, &m.AccruedAmount, &m.LastUpdatedAt); err != nil {
		return nil, err
	}
	a := mapping.ToDomainPayrollAccrual(m)
	return &a, nil
}

func (r *PgxPayrollRepository) ListAccruals(ctx context.Context) ([]domain.PayrollAccrual, error) {
	query := `SELECT ` + accrualColumns + ` FROM payroll_accruals ORDER BY role, staff_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll accruals: %w", err)
	}
	defer rows.Close()

	accruals := []domain.PayrollAccrual{}
	for rows.Next() {
		a, err := scanAccrual(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll accrual row: %w", err)
		}
		accruals = append(accruals, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payroll accrual rows: %w", err)
	}
	return accruals, nil
}

func (r *PgxPayrollRepository) FindAccrualByStaff(ctx context.Context, staffID string) (*domain.PayrollAccrual, error) {
	query := `SELECT ` + accrualColumns + ` FROM payroll_accruals WHERE staff_id = $1;`
	a, err := scanAccrual(r.Pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll accrual for staff %s: %w", staffID, err)
	}
	return a, nil
}

func (r *PgxPayrollRepository) ListSalaryPayments(ctx context.Context, limit int, offset int) ([]domain.SalaryPayment, error) {
	query := `
		SELECT payment_id, staff_id, role, amount, description, transaction_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM salary_payments
		ORDER BY created_at DESC, payment_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary payments: %w", err)
	}
	defer rows.Close()

	var result []models.SalaryPayment
	for rows.Next() {
		var m models.SalaryPayment
		if err := rows.Scan(
			&m.PaymentID,
			&m.StaffID,
			&m.Role,
			&m.Amount,
			&m.Description,
			&m.TransactionID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan salary payment row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary payment rows: %w", err)
	}

	payments := make([]domain.SalaryPayment, len(result))
	for i, m := range result {
		payments[i] = mapping.ToDomainSalaryPayment(m)
	}
	return payments, nil
}

// SummarizeSalaries totals accruals and payouts per role, including roles with no activity.
func (r *PgxPayrollRepository) SummarizeSalaries(ctx context.Context) ([]domain.RoleSalarySummary, error) {
	query := `
		SELECT r.role,
		       COALESCE((SELECT SUM(accrued_amount) FROM payroll_accruals a WHERE a.role = r.role), 0) AS total_accrued,
		       COALESCE((SELECT SUM(amount) FROM salary_payments p WHERE p.role = r.role), 0) AS total_paid
		FROM unnest($1::text[]) AS r(role)
		ORDER BY r.role;
	`
	roles := make([]string, len(domain.StaffRoles))
	for i, role := range domain.StaffRoles {
		roles[i] = string(role)
	}

	rows, err := r.Pool.Query(ctx, query, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to query salary summary: %w", err)
	}
	defer rows.Close()

	summaries := []domain.RoleSalarySummary{}
	for rows.Next() {
		var role string
		var s domain.RoleSalarySummary
		if err := rows.Scan(&role, &s.TotalAccrued, &s.TotalPaid); err != nil {
			return nil, fmt.Errorf("failed to scan salary summary row: %w", err)
		}
		s.Role = domain.StaffRole(role)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating salary summary rows: %w", err)
	}
	return summaries, nil
}

// UpsertAccrualInTx creates the accrual at zero on first use and adds the delta.
func (r *PgxPayrollRepository) UpsertAccrualInTx(ctx context.Context, tx pgx.Tx, change domain.AccrualChange, now time.Time) (*domain.PayrollAccrual, error) {
	query := `
		INSERT INTO payroll_accruals (staff_id, role, accrued_amount, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id) DO UPDATE
		SET accrued_amount = payroll_accruals.accrued_amount + EXCLUDED.accrued_amount,
		    role = EXCLUDED.role,
		    last_updated_at = EXCLUDED.last_updated_at
		RETURNING ` + accrualColumns + `;
	`
	a, err := scanAccrual(tx.QueryRow(ctx, query, change.StaffID, string(change.Role), change.Delta, now))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert payroll accrual for staff %s: %w", change.StaffID, err)
	}
	return a, nil
}

func (r *PgxPayrollRepository) DecrementAccrualInTx(ctx context.Context, tx pgx.Tx, staffID string, amount decimal.Decimal, now time.Time) (*domain.PayrollAccrual, error) {
	query := `
		UPDATE payroll_accruals
		SET accrued_amount = accrued_amount - $2, last_updated_at = $3
		WHERE staff_id = $1
		RETURNING ` + accrualColumns + `;
	`
	a, err := scanAccrual(tx.QueryRow(ctx, query, staffID, amount, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no payroll accrual for staff %s", apperrors.ErrNotFound, staffID)
		}
		return nil, fmt.Errorf("failed to decrement payroll accrual for staff %s: %w", staffID, err)
	}
	return a, nil
}

func (r *PgxPayrollRepository) SaveSalaryPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SalaryPayment) error {
	m := mapping.ToModelSalaryPayment(payment)
	query := `
		INSERT INTO salary_payments (payment_id, staff_id, role, amount, description, transaction_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.StaffID,
		m.Role,
		m.Amount,
		m.Description,
		m.TransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save salary payment %s: %w", m.PaymentID, err)
	}
	return nil
}
