package dto

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaySalaryRequest pays a staff member out of the ledger account.
type PaySalaryRequest struct {
	StaffID     string           `json:"staffID" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"max=255"`
}

type PaySalaryResponse struct {
	Payment     domain.SalaryPayment   `json:"payment"`
	Accrual     *domain.PayrollAccrual `json:"accrual"`
	Transaction TransactionResponse    `json:"transaction"`
}

type ListAccrualsResponse struct {
	Accruals []domain.PayrollAccrual `json:"accruals"`
}

type SalarySummaryResponse struct {
	Roles []domain.RoleSalarySummary `json:"roles"`
}
