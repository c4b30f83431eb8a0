package mapping

import (
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
)

func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		Seq:             d.Seq,
		AccountID:       d.AccountID,
		Amount:          d.Amount,
		Description:     d.Description,
		TransactionType: models.TransactionType(d.TransactionType),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		Seq:             m.Seq,
		AccountID:       m.AccountID,
		Amount:          m.Amount,
		Description:     m.Description,
		TransactionType: domain.TransactionType(m.TransactionType),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func ToDomainTransactions(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func ToDomainLedgerAccount(m models.LedgerAccount) domain.LedgerAccount {
	return domain.LedgerAccount{
		AccountID:   m.AccountID,
		Name:        m.Name,
		Balance:     m.Balance,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
