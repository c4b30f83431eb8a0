package mapping

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
)

func ToModelFlakesIntake(d domain.FlakesIntake) models.FlakesIntake {
	return models.FlakesIntake{
		FlakesIntakeID: d.FlakesIntakeID,
		Serial:         d.Serial,
		FlakesType:     d.FlakesType,
		Quantity:       ToNullDecimal(d.Quantity),
		UnitCost:       ToNullDecimal(d.UnitCost),
		TotalCost1:     ToNullDecimal(d.TotalCost1),
		IntakeDate:     d.Date,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFlakesIntake(m models.FlakesIntake) domain.FlakesIntake {
	return domain.FlakesIntake{
		FlakesIntakeID: m.FlakesIntakeID,
		Serial:         m.Serial,
		FlakesType:     m.FlakesType,
		Quantity:       FromNullDecimal(m.Quantity),
		UnitCost:       FromNullDecimal(m.UnitCost),
		TotalCost1:     FromNullDecimal(m.TotalCost1),
		Date:           m.IntakeDate,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelFlakesCost(d domain.FlakesCost) models.FlakesCost {
	return models.FlakesCost{
		CostID:        d.CostID,
		WashingCost:   ToNullDecimal(d.WashingCost),
		TransportCost: ToNullDecimal(d.TransportCost),
		PelletingCost: ToNullDecimal(d.PelletingCost),
		OtherCost:     ToNullDecimal(d.OtherCost),
		TotalCost2:    ToNullDecimal(d.TotalCost2),
		CostDate:      d.Date,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainFlakesCost(m models.FlakesCost) domain.FlakesCost {
	return domain.FlakesCost{
		CostID:        m.CostID,
		WashingCost:   FromNullDecimal(m.WashingCost),
		TransportCost: FromNullDecimal(m.TransportCost),
		PelletingCost: FromNullDecimal(m.PelletingCost),
		OtherCost:     FromNullDecimal(m.OtherCost),
		TotalCost2:    FromNullDecimal(m.TotalCost2),
		Date:          m.CostDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelPelletsPrice(d domain.PelletsPrice) models.PelletsPrice {
	return models.PelletsPrice{
		PriceID:      d.PriceID,
		PriceDate:    d.Date,
		FlakesSerial: ToNullString(d.FlakesSerial),
		CostID:       ToNullString(d.CostID),
		Quantity:     ToNullDecimal(d.Quantity),
		UnitPrice:    ToNullDecimal(d.UnitPrice),
		Price:        ToNullDecimal(d.Price),
		Profit:       ToNullDecimal(d.Profit),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainPelletsPrice(m models.PelletsPrice) domain.PelletsPrice {
	return domain.PelletsPrice{
		PriceID:      m.PriceID,
		Date:         m.PriceDate,
		FlakesSerial: FromNullString(m.FlakesSerial),
		CostID:       FromNullString(m.CostID),
		Quantity:     FromNullDecimal(m.Quantity),
		UnitPrice:    FromNullDecimal(m.UnitPrice),
		Price:        FromNullDecimal(m.Price),
		Profit:       FromNullDecimal(m.Profit),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
