package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ExpenseCategory struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}

// Expense is money spent out of the ledger account. CreatedBy is the owning user.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`
	CategoryID    string          `json:"categoryID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Date          time.Time       `json:"date"`
	Approved      bool            `json:"approved"`
	TransactionID string          `json:"transactionID"`
	AuditFields
}
