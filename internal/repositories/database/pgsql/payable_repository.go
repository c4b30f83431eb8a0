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
)

type PgxPayableRepository struct {
	BaseRepository
}

func newPgxPayableRepository(pool *pgxpool.Pool) portsrepo.PayableRepositoryWithTx {
	return &PgxPayableRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PayableRepositoryWithTx = (*PgxPayableRepository)(nil)

const payableColumns = `customer_id, amount, due_date, last_updated_at`

func scanPayable(row pgx.Row) (*domain.AccountPayable, error) {
	var m models.AccountPayable
	if err := row.Scan(&m.CustomerID, &m.Amount, &m.DueDate, &m.LastUpdatedAt); err != nil {
		return nil, err
	}
	p := mapping.ToDomainAccountPayable(m)
	return &p, nil
}

func (r *PgxPayableRepository) FindPayableByCustomer(ctx context.Context, customerID string) (*domain.AccountPayable, error) {
	query := `SELECT ` + payableColumns + ` FROM account_payables WHERE customer_id = $1;`
	p, err := scanPayable(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payable for customer %s: %w", customerID, err)
	}
	return p, nil
}

func (r *PgxPayableRepository) ListPayables(ctx context.Context, limit int, offset int) ([]domain.AccountPayable, error) {
	query := `SELECT ` + payableColumns + ` FROM account_payables ORDER BY due_date, customer_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables := []domain.AccountPayable{}
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", err)
	}
	return payables, nil
}

func (r *PgxPayableRepository) ListPaymentsByCustomer(ctx context.Context, customerID string) ([]domain.CustomerPayment, error) {
	query := `
		SELECT payment_id, customer_id, amount, description, created_at, created_by, last_updated_at, last_updated_by
		FROM customer_payments
		WHERE customer_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	payments := []domain.CustomerPayment{}
	for rows.Next() {
		var m models.CustomerPayment
		if err := rows.Scan(
			&m.PaymentID,
			&m.CustomerID,
			&m.Amount,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan customer payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainCustomerPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer payment rows: %w", err)
	}
	return payments, nil
}

// UpsertPayableInTx creates the payable at zero on first use and adds the delta.
// The due date is replaced only when the change carries one.
func (r *PgxPayableRepository) UpsertPayableInTx(ctx context.Context, tx pgx.Tx, change domain.PayableChange, now time.Time) (*domain.AccountPayable, error) {
	query := `
		INSERT INTO account_payables (customer_id, amount, due_date, last_updated_at)
		VALUES ($1, $2, COALESCE($3::timestamptz, $4), $4)
		ON CONFLICT (customer_id) DO UPDATE
		SET amount = account_payables.amount + EXCLUDED.amount,
		    due_date = COALESCE($3::timestamptz, account_payables.due_date),
		    last_updated_at = EXCLUDED.last_updated_at
		RETURNING ` + payableColumns + `;
	`
	p, err := scanPayable(tx.QueryRow(ctx, query, change.CustomerID, change.Delta, change.DueDate, now))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert payable for customer %s: %w", change.CustomerID, err)
	}
	return p, nil
}

func (r *PgxPayableRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CustomerPayment) error {
	m := mapping.ToModelCustomerPayment(payment)
	query := `
		INSERT INTO customer_payments (payment_id, customer_id, amount, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.CustomerID,
		m.Amount,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}
