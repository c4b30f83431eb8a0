package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer supplies material to the operation and is owed payables for it.
type Customer struct {
	CustomerID  string  `json:"customerID"`
	Name        string  `json:"name"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber string  `json:"phoneNumber"`
	Address     *string `json:"address,omitempty"`
	AuditFields
}

// StaffRole is one of the three payroll roles.
type StaffRole string

const (
	RoleManager  StaffRole = "manager"
	RoleOperator StaffRole = "operator"
	RolePacker   StaffRole = "packer"
)

// StaffRoles lists the roles in the order their accruals are applied.
var StaffRoles = []StaffRole{RoleManager, RoleOperator, RolePacker}

func (r StaffRole) IsValid() bool {
	switch r {
	case RoleManager, RoleOperator, RolePacker:
		return true
	}
	return false
}

// StaffMember is an employee paid by accrual.
type StaffMember struct {
	StaffID     string    `json:"staffID"`
	Role        StaffRole `json:"role"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber string    `json:"phoneNumber"`
	Address     *string   `json:"address,omitempty"`
	AuditFields
}

// MaterialIntake is a batch of material received from a customer.
type MaterialIntake struct {
	IntakeID     string          `json:"intakeID"`
	Serial       string          `json:"serial"`
	CustomerID   string          `json:"customerID"`
	MaterialType string          `json:"materialType"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         time.Time       `json:"date"`
	IsProcessed  bool            `json:"isProcessed"`
	AuditFields
}
