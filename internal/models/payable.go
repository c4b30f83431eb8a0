package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountPayable is a row of account_payables, keyed by customer.
type AccountPayable struct {
	CustomerID    string          `db:"customer_id"`
	Amount        decimal.Decimal `db:"amount"`
	DueDate       time.Time       `db:"due_date"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}

// CustomerPayment is a row of customer_payments.
type CustomerPayment struct {
	PaymentID   string          `db:"payment_id"`
	CustomerID  string          `db:"customer_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description string          `db:"description"`
	AuditFields
}
