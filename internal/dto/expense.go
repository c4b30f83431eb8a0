package dto

import (
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateExpenseCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=255"`
}

// CreateExpenseRequest spends money out of the ledger account.
type CreateExpenseRequest struct {
	CategoryID  string           `json:"categoryID" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"max=255"`
	Date        *time.Time       `json:"date"`
}

type CreateExpenseResponse struct {
	Expense     domain.Expense      `json:"expense"`
	Transaction TransactionResponse `json:"transaction"`
}

type ListExpenseCategoriesResponse struct {
	Categories []domain.ExpenseCategory `json:"categories"`
}

type ListExpensesResponse struct {
	Expenses []domain.Expense `json:"expenses"`
}
