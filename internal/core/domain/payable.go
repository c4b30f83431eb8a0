package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountPayable is the amount owed to one customer, net of payments.
type AccountPayable struct {
	CustomerID    string          `json:"customerID"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       time.Time       `json:"dueDate"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// PayableChange is a signed adjustment to a customer's payable. A nil DueDate
// keeps the existing due date, or uses the current time on creation.
type PayableChange struct {
	CustomerID string
	Delta      decimal.Decimal
	DueDate    *time.Time
}

// CustomerPayment is money paid to a customer against their payable.
type CustomerPayment struct {
	PaymentID   string          `json:"paymentID"`
	CustomerID  string          `json:"customerID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	AuditFields
}
