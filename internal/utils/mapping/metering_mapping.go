package mapping

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
)

func ToModelMeterReading(d domain.MeterReading) models.MeterReading {
	return models.MeterReading{
		ReadingID:       d.ReadingID,
		Seq:             d.Seq,
		MeterID:         d.MeterID,
		ReadingDate:     d.Date,
		Shift:           int16(d.Shift),
		Reading:         d.Reading,
		PreviousReading: ToNullDecimal(d.PreviousReading),
		Consumption:     ToNullDecimal(d.Consumption),
		Cost:            ToNullDecimal(d.Cost),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainMeterReading(m models.MeterReading) domain.MeterReading {
	return domain.MeterReading{
		ReadingID:       m.ReadingID,
		Seq:             m.Seq,
		MeterID:         m.MeterID,
		Date:            m.ReadingDate,
		Shift:           domain.Shift(m.Shift),
		Reading:         m.Reading,
		PreviousReading: FromNullDecimal(m.PreviousReading),
		Consumption:     FromNullDecimal(m.Consumption),
		Cost:            FromNullDecimal(m.Cost),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelElectricityConfiguration(d domain.ElectricityConfiguration) models.ElectricityConfiguration {
	return models.ElectricityConfiguration{
		FixedCostPerUnit: ToNullDecimal(d.FixedCostPerUnit),
		InitialReading:   ToNullDecimal(d.InitialReading),
		LastUpdatedAt:    d.LastUpdatedAt,
		LastUpdatedBy:    d.LastUpdatedBy,
	}
}

func ToDomainElectricityConfiguration(m models.ElectricityConfiguration) domain.ElectricityConfiguration {
	return domain.ElectricityConfiguration{
		FixedCostPerUnit: FromNullDecimal(m.FixedCostPerUnit),
		InitialReading:   FromNullDecimal(m.InitialReading),
		LastUpdatedAt:    m.LastUpdatedAt,
		LastUpdatedBy:    m.LastUpdatedBy,
	}
}
