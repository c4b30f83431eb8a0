package dto

import (
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordMeterReadingRequest is the input for a new electricity meter reading.
type RecordMeterReadingRequest struct {
	MeterID string           `json:"meterID" binding:"required,max=50"`
	Date    *time.Time       `json:"date"`
	Shift   domain.Shift     `json:"shift" binding:"required,oneof=1 2"`
	Reading *decimal.Decimal `json:"reading" binding:"required"`
}

// UpdateElectricityConfigurationRequest sets the singleton metering configuration.
// Omitted fields keep their stored value.
type UpdateElectricityConfigurationRequest struct {
	FixedCostPerUnit *decimal.Decimal `json:"fixedCostPerUnit"`
	InitialReading   *decimal.Decimal `json:"initialReading"`
}

type ListMeterReadingsResponse struct {
	Readings []domain.MeterReading `json:"readings"`
}
