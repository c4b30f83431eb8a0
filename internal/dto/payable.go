package dto

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest records money paid to a customer.
type CreatePaymentRequest struct {
	CustomerID  string           `json:"customerID" binding:"required"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"max=255"`
}

type CreatePaymentResponse struct {
	Payment domain.CustomerPayment `json:"payment"`
	Payable domain.AccountPayable  `json:"payable"`
}

type ListPayablesResponse struct {
	Payables []domain.AccountPayable `json:"payables"`
}
