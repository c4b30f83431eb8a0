package mapping

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
)

func ToDomainPayrollAccrual(m models.PayrollAccrual) domain.PayrollAccrual {
	return domain.PayrollAccrual{
		StaffID:       m.StaffID,
		Role:          domain.StaffRole(m.Role),
		AccruedAmount: m.AccruedAmount,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

func ToModelSalaryPayment(d domain.SalaryPayment) models.SalaryPayment {
	return models.SalaryPayment{
		PaymentID:     d.PaymentID,
		StaffID:       d.StaffID,
		Role:          string(d.Role),
		Amount:        d.Amount,
		Description:   d.Description,
		TransactionID: d.TransactionID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainSalaryPayment(m models.SalaryPayment) domain.SalaryPayment {
	return domain.SalaryPayment{
		PaymentID:     m.PaymentID,
		StaffID:       m.StaffID,
		Role:          domain.StaffRole(m.Role),
		Amount:        m.Amount,
		Description:   m.Description,
		TransactionID: m.TransactionID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainAccountPayable(m models.AccountPayable) domain.AccountPayable {
	return domain.AccountPayable{
		CustomerID:    m.CustomerID,
		Amount:        m.Amount,
		DueDate:       m.DueDate,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

func ToModelCustomerPayment(d domain.CustomerPayment) models.CustomerPayment {
	return models.CustomerPayment{
		PaymentID:   d.PaymentID,
		CustomerID:  d.CustomerID,
		Amount:      d.Amount,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainCustomerPayment(m models.CustomerPayment) domain.CustomerPayment {
	return domain.CustomerPayment{
		PaymentID:   m.PaymentID,
		CustomerID:  m.CustomerID,
		Amount:      m.Amount,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
