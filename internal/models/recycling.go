package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// RecyclingOperation is a row of recycling_operations.
type RecyclingOperation struct {
	OperationID             string              `db:"operation_id"`
	MeterReadingID          sql.NullString      `db:"meter_reading_id"`
	IntakeID                sql.NullString      `db:"intake_id"`
	MaterialUsed            decimal.Decimal     `db:"material_used"`
	Bangori                 decimal.Decimal     `db:"bangori"`
	Rate                    decimal.Decimal     `db:"rate"`
	ManagerID               sql.NullString      `db:"manager_id"`
	OperatorID              sql.NullString      `db:"operator_id"`
	PackerID                sql.NullString      `db:"packer_id"`
	Amount                  decimal.NullDecimal `db:"amount"`
	Amount1                 decimal.NullDecimal `db:"amount1"`
	StandardElectricityCost decimal.NullDecimal `db:"standard_electricity_cost"`
	ElectricityVariance     decimal.NullDecimal `db:"electricity_variance"`
	OperationDate           time.Time           `db:"operation_date"`
	AuditFields
}
