package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecyclingOperation is one production run converting intake material.
// Reference fields are nil when the referenced row did not resolve.
type RecyclingOperation struct {
	OperationID             string           `json:"operationID"`
	MeterReadingID          *string          `json:"meterReadingID"`
	IntakeID                *string          `json:"intakeID"`
	MaterialUsed            decimal.Decimal  `json:"materialUsed"`
	Bangori                 decimal.Decimal  `json:"bangori"`
	Rate                    decimal.Decimal  `json:"rate"`
	ManagerID               *string          `json:"managerID"`
	OperatorID              *string          `json:"operatorID"`
	PackerID                *string          `json:"packerID"`
	Amount                  *decimal.Decimal `json:"amount"`
	Amount1                 *decimal.Decimal `json:"amount1"`
	StandardElectricityCost *decimal.Decimal `json:"standardElectricityCost"`
	ElectricityVariance     *decimal.Decimal `json:"electricityVariance"`
	Date                    time.Time        `json:"date"`
	AuditFields
}

// StaffAssignment pairs a payroll role with the staff member filling it.
type StaffAssignment struct {
	Role    StaffRole
	StaffID *string
}

// StaffAssignments returns the role assignments in accrual order.
func (op RecyclingOperation) StaffAssignments() []StaffAssignment {
	return []StaffAssignment{
		{Role: RoleManager, StaffID: op.ManagerID},
		{Role: RoleOperator, StaffID: op.OperatorID},
		{Role: RolePacker, StaffID: op.PackerID},
	}
}

// RecyclingOutcome is everything a single recycling operation touched.
type RecyclingOutcome struct {
	Operation RecyclingOperation `json:"operation"`
	Accruals  []PayrollAccrual   `json:"accruals"`
	Payable   *AccountPayable    `json:"payable"`
}
