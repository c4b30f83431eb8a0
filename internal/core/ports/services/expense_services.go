package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

type ExpenseSvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, userID string) (*domain.ExpenseCategory, error)
	ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error)

	// CreateExpense debits the ledger. Nothing is stored when the balance is insufficient.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, *domain.Transaction, error)
	// ListExpenses returns only the caller's expenses.
	ListExpenses(ctx context.Context, userID string, params dto.ListParams) ([]domain.Expense, error)
}
