package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a row of customers.
type Customer struct {
	CustomerID  string         `db:"customer_id"`
	Name        string         `db:"name"`
	Email       sql.NullString `db:"email"`
	PhoneNumber string         `db:"phone_number"`
	Address     sql.NullString `db:"address"`
	AuditFields
}

// StaffMember is a row of staff_members.
type StaffMember struct {
	StaffID     string         `db:"staff_id"`
	Role        string         `db:"role"`
	Name        string         `db:"name"`
	Email       sql.NullString `db:"email"`
	PhoneNumber string         `db:"phone_number"`
	Address     sql.NullString `db:"address"`
	AuditFields
}

// MaterialIntake is a row of material_intakes.
type MaterialIntake struct {
	IntakeID     string          `db:"intake_id"`
	Serial       string          `db:"serial"`
	CustomerID   string          `db:"customer_id"`
	MaterialType string          `db:"material_type"`
	Quantity     decimal.Decimal `db:"quantity"`
	IntakeDate   time.Time       `db:"intake_date"`
	IsProcessed  bool            `db:"is_processed"`
	AuditFields
}
