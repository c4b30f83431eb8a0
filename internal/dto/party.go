package dto

import (
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

type CreateCustomerRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber string  `json:"phoneNumber" binding:"required,max=20"`
	Address     *string `json:"address" binding:"omitempty,max=255"`
}

type CreateStaffRequest struct {
	Role        domain.StaffRole `json:"role" binding:"required,oneof=manager operator packer"`
	Name        string           `json:"name" binding:"required,max=100"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	PhoneNumber string           `json:"phoneNumber" binding:"required,max=20"`
	Address     *string          `json:"address" binding:"omitempty,max=255"`
}

// CreateIntakeRequest records a batch of material received from a customer.
type CreateIntakeRequest struct {
	Serial       string           `json:"serial" binding:"required,max=20"`
	CustomerID   string           `json:"customerID" binding:"required"`
	MaterialType string           `json:"materialType" binding:"required,max=255,nodigits"`
	Quantity     *decimal.Decimal `json:"quantity" binding:"required"`
	Date         *time.Time       `json:"date"`
}

type ListCustomersResponse struct {
	Customers []domain.Customer `json:"customers"`
}

type ListStaffResponse struct {
	Staff []domain.StaffMember `json:"staff"`
}

type ListIntakesResponse struct {
	Intakes []domain.MaterialIntake `json:"intakes"`
}
