package mapping

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
)

func ToModelCustomer(d domain.Customer) models.Customer {
	return models.Customer{
		CustomerID:  d.CustomerID,
		Name:        d.Name,
		Email:       ToNullString(d.Email),
		PhoneNumber: d.PhoneNumber,
		Address:     ToNullString(d.Address),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Email:       FromNullString(m.Email),
		PhoneNumber: m.PhoneNumber,
		Address:     FromNullString(m.Address),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelStaffMember(d domain.StaffMember) models.StaffMember {
	return models.StaffMember{
		StaffID:     d.StaffID,
		Role:        string(d.Role),
		Name:        d.Name,
		Email:       ToNullString(d.Email),
		PhoneNumber: d.PhoneNumber,
		Address:     ToNullString(d.Address),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainStaffMember(m models.StaffMember) domain.StaffMember {
	return domain.StaffMember{
		StaffID:     m.StaffID,
		Role:        domain.StaffRole(m.Role),
		Name:        m.Name,
		Email:       FromNullString(m.Email),
		PhoneNumber: m.PhoneNumber,
		Address:     FromNullString(m.Address),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelMaterialIntake(d domain.MaterialIntake) models.MaterialIntake {
	return models.MaterialIntake{
		IntakeID:     d.IntakeID,
		Serial:       d.Serial,
		CustomerID:   d.CustomerID,
		MaterialType: d.MaterialType,
		Quantity:     d.Quantity,
		IntakeDate:   d.Date,
		IsProcessed:  d.IsProcessed,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainMaterialIntake(m models.MaterialIntake) domain.MaterialIntake {
	return domain.MaterialIntake{
		IntakeID:     m.IntakeID,
		Serial:       m.Serial,
		CustomerID:   m.CustomerID,
		MaterialType: m.MaterialType,
		Quantity:     m.Quantity,
		Date:         m.IntakeDate,
		IsProcessed:  m.IsProcessed,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
