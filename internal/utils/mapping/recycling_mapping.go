package mapping

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
)

func ToModelRecyclingOperation(d domain.RecyclingOperation) models.RecyclingOperation {
	return models.RecyclingOperation{
		OperationID:             d.OperationID,
		MeterReadingID:          ToNullString(d.MeterReadingID),
		IntakeID:                ToNullString(d.IntakeID),
		MaterialUsed:            d.MaterialUsed,
		Bangori:                 d.Bangori,
		Rate:                    d.Rate,
		ManagerID:               ToNullString(d.ManagerID),
		OperatorID:              ToNullString(d.OperatorID),
		PackerID:                ToNullString(d.PackerID),
		Amount:                  ToNullDecimal(d.Amount),
		Amount1:                 ToNullDecimal(d.Amount1),
		StandardElectricityCost: ToNullDecimal(d.StandardElectricityCost),
		ElectricityVariance:     ToNullDecimal(d.ElectricityVariance),
		OperationDate:           d.Date,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainRecyclingOperation(m models.RecyclingOperation) domain.RecyclingOperation {
	return domain.RecyclingOperation{
		OperationID:             m.OperationID,
		MeterReadingID:          FromNullString(m.MeterReadingID),
		IntakeID:                FromNullString(m.IntakeID),
		MaterialUsed:            m.MaterialUsed,
		Bangori:                 m.Bangori,
		Rate:                    m.Rate,
		ManagerID:               FromNullString(m.ManagerID),
		OperatorID:              FromNullString(m.OperatorID),
		PackerID:                FromNullString(m.PackerID),
		Amount:                  FromNullDecimal(m.Amount),
		Amount1:                 FromNullDecimal(m.Amount1),
		StandardElectricityCost: FromNullDecimal(m.StandardElectricityCost),
		ElectricityVariance:     FromNullDecimal(m.ElectricityVariance),
		Date:                    m.OperationDate,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}
