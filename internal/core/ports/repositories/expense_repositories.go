package repositories

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

type ExpenseReader interface {
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)
	ListExpenses(ctx context.Context, userID string, limit int, offset int) ([]domain.Expense, error)
}

type ExpenseWriter interface {
	// SaveCategory inserts a category. A name collision returns ErrDuplicate.
	SaveCategory(ctx context.Context, category domain.ExpenseCategory) error
}

type ExpenseTransactionSupport interface {
	SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error
}

type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	ExpenseTransactionSupport
}

type ExpenseRepositoryWithTx interface {
	ExpenseRepositoryFacade
	TransactionManager
}
