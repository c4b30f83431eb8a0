package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory struct {
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}

// Expense is a row of expenses.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	CategoryID    string          `db:"category_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	ExpenseDate   time.Time       `db:"expense_date"`
	Approved      bool            `db:"approved"`
	TransactionID string          `db:"transaction_id"`
	AuditFields
}
