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

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.ExpenseRepositoryWithTx {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryWithTx = (*PgxExpenseRepository)(nil)

const categoryColumns = `category_id, name, description, created_at, created_by, last_updated_at, last_updated_by`

func scanCategory(row pgx.Row) (*domain.ExpenseCategory, error) {
	var m models.ExpenseCategory
	if err := row.Scan(
		&m.CategoryID,
		&m.Name,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	c := mapping.ToDomainExpenseCategory(m)
	return &c, nil
}

func (r *PgxExpenseRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM expense_categories WHERE category_id = $1;`
	c, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense category %s: %w", categoryID, err)
	}
	return c, nil
}

func (r *PgxExpenseRepository) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	query := `SELECT ` + categoryColumns + ` FROM expense_categories ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.ExpenseCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense category row: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense category rows: %w", err)
	}
	return categories, nil
}

// ListExpenses returns the expenses created by userID, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, userID string, limit int, offset int) ([]domain.Expense, error) {
	query := `
		SELECT expense_id, category_id, amount, description, expense_date, approved, transaction_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE created_by = $1
		ORDER BY expense_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var m models.Expense
		if err := rows.Scan(
			&m.ExpenseID,
			&m.CategoryID,
			&m.Amount,
			&m.Description,
			&m.ExpenseDate,
			&m.Approved,
			&m.TransactionID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, mapping.ToDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

func (r *PgxExpenseRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	m := mapping.ToModelExpenseCategory(category)
	query := `
		INSERT INTO expense_categories (category_id, name, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CategoryID,
		m.Name,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: expense category %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save expense category %s: %w", m.CategoryID, err)
	}
	return nil
}

func (r *PgxExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
		INSERT INTO expenses (expense_id, category_id, amount, description, expense_date, approved, transaction_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.ExpenseID,
		m.CategoryID,
		m.Amount,
		m.Description,
		m.ExpenseDate,
		m.Approved,
		m.TransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", m.ExpenseID, err)
	}
	return nil
}
