package mapping

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
)

func ToModelExpenseCategory(d domain.ExpenseCategory) models.ExpenseCategory {
	return models.ExpenseCategory{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainExpenseCategory(m models.ExpenseCategory) domain.ExpenseCategory {
	return domain.ExpenseCategory{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		CategoryID:    d.CategoryID,
		Amount:        d.Amount,
		Description:   d.Description,
		ExpenseDate:   d.Date,
		Approved:      d.Approved,
		TransactionID: d.TransactionID,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		Description:   m.Description,
		Date:          m.ExpenseDate,
		Approved:      m.Approved,
		TransactionID: m.TransactionID,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
