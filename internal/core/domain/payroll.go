package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollAccrual is the running unpaid salary for one staff member.
type PayrollAccrual struct {
	StaffID       string          `json:"staffID"`
	Role          StaffRole       `json:"role"`
	AccruedAmount decimal.Decimal `json:"accruedAmount"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// AccrualChange is a signed adjustment applied to a staff member's accrual.
type AccrualChange struct {
	StaffID string
	Role    StaffRole
	Delta   decimal.Decimal
}

// SalaryPayment records money paid out to a staff member.
type SalaryPayment struct {
	PaymentID     string          `json:"paymentID"`
	StaffID       string          `json:"staffID"`
	Role          StaffRole       `json:"role"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	TransactionID string          `json:"transactionID"`
	AuditFields
}

// RoleSalarySummary aggregates accruals and payouts for one role.
type RoleSalarySummary struct {
	Role         StaffRole       `json:"role"`
	TotalAccrued decimal.Decimal `json:"totalAccrued"`
	TotalPaid    decimal.Decimal `json:"totalPaid"`
}
