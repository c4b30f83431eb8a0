package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MeterReading is a row of meter_readings.
type MeterReading struct {
	ReadingID       string              `db:"reading_id"`
	Seq             int64               `db:"seq"`
	MeterID         string              `db:"meter_id"`
	ReadingDate     time.Time           `db:"reading_date"`
	Shift           int16               `db:"shift"`
	Reading         decimal.Decimal     `db:"reading"`
	PreviousReading decimal.NullDecimal `db:"previous_reading"`
	Consumption     decimal.NullDecimal `db:"consumption"`
	Cost            decimal.NullDecimal `db:"cost"`
	AuditFields
}

// ElectricityConfiguration is the single row of electricity_configuration.
type ElectricityConfiguration struct {
	FixedCostPerUnit decimal.NullDecimal `db:"fixed_cost_per_unit"`
	InitialReading   decimal.NullDecimal `db:"initial_reading"`
	LastUpdatedAt    time.Time           `db:"last_updated_at"`
	LastUpdatedBy    string              `db:"last_updated_by"`
}
