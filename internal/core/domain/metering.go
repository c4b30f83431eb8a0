package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shift is the production shift a meter reading was taken in.
type Shift int

const (
	ShiftMorning Shift = 1
	ShiftNight   Shift = 2
)

func (s Shift) IsValid() bool {
	return s == ShiftMorning || s == ShiftNight
}

func (s Shift) String() string {
	switch s {
	case ShiftMorning:
		return "morning"
	case ShiftNight:
		return "night"
	default:
		return "unknown"
	}
}

// MeterReading is one entry in the append-only sequence of electricity readings.
// Seq is assigned by storage and is strictly increasing in insertion order.
type MeterReading struct {
	ReadingID       string           `json:"readingID"`
	Seq             int64            `json:"seq"`
	MeterID         string           `json:"meterID"`
	Date            time.Time        `json:"date"`
	Shift           Shift            `json:"shift"`
	Reading         decimal.Decimal  `json:"reading"`
	PreviousReading *decimal.Decimal `json:"previousReading"`
	Consumption     *decimal.Decimal `json:"consumption"`
	Cost            *decimal.Decimal `json:"cost"`
	AuditFields
}

// ElectricityConfiguration is the singleton metering configuration.
// Either field may be unset.
type ElectricityConfiguration struct {
	FixedCostPerUnit *decimal.Decimal `json:"fixedCostPerUnit"`
	InitialReading   *decimal.Decimal `json:"initialReading"`
	LastUpdatedAt    time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy    string           `json:"lastUpdatedBy"`
}

// ResolvePreviousReading picks the baseline for a new reading: the latest stored
// reading across all meters, else the configured initial reading, else the new
// reading itself.
func ResolvePreviousReading(latest *MeterReading, initial *decimal.Decimal, current decimal.Decimal) decimal.Decimal {
	if latest != nil {
		return latest.Reading
	}
	if initial != nil {
		return *initial
	}
	return current
}

// ApplyBaseline fills in previous reading, consumption and cost. Cost is rounded
// to cents.
func (r *MeterReading) ApplyBaseline(previous, fixedCostPerUnit decimal.Decimal) {
	consumption := r.Reading.Sub(previous)
	cost := consumption.Mul(fixedCostPerUnit).Round(2)
	r.PreviousReading = &previous
	r.Consumption = &consumption
	r.Cost = &cost
}
