package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{pool: pool}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, email, phone_number, address, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var m models.Customer
	if err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Email,
		&m.PhoneNumber,
		&m.Address,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	c := mapping.ToDomainCustomer(m)
	return &c, nil
}

func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)
	query := `
		INSERT INTO customers (customer_id, name, email, phone_number, address, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Email,
		m.PhoneNumber,
		m.Address,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: customer %s already exists", apperrors.ErrDuplicate, m.CustomerID)
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	c, err := scanCustomer(r.pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return c, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name, customer_id LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}
