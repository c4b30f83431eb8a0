package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollAccrual is a row of payroll_accruals, keyed by staff member.
type PayrollAccrual struct {
	StaffID       string          `db:"staff_id"`
	Role          string          `db:"role"`
	AccruedAmount decimal.Decimal `db:"accrued_amount"`
	LastUpdatedAt time.Time       `db:"last_updated_at"`
}

// SalaryPayment is a row of salary_payments.
type SalaryPayment struct {
	PaymentID     string          `db:"payment_id"`
	StaffID       string          `db:"staff_id"`
	Role          string          `db:"role"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	TransactionID string          `db:"transaction_id"`
	AuditFields
}
