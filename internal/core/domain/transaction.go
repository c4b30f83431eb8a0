package domain

import (
	"iter"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a ledger entry is a credit or a debit.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// Transaction is an immutable entry in the ledger's transaction log.
// Recording a transaction never changes the account balance by itself.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Seq             int64           `json:"seq"`
	AccountID       string          `json:"accountID"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"transactionType"`
	AuditFields
}

// StatementLine is one row of a reconstructed running-balance statement.
// Exactly one of DebitAmount and CreditAmount is set.
type StatementLine struct {
	TransactionID string           `json:"transactionID"`
	Date          time.Time        `json:"date"`
	Description   string           `json:"description"`
	DebitAmount   *decimal.Decimal `json:"debitAmount"`
	CreditAmount  *decimal.Decimal `json:"creditAmount"`
	Balance       decimal.Decimal  `json:"balance"`
}

// RunningBalance replays transactions in the order given, starting from a zero
// balance. The returned sequence is lazy and can be ranged over more than once;
// each pass starts again from zero.
func RunningBalance(transactions []Transaction) iter.Seq[StatementLine] {
	return func(yield func(StatementLine) bool) {
		balance := decimal.Zero
		for _, txn := range transactions {
			amount := txn.Amount
			line := StatementLine{
				TransactionID: txn.TransactionID,
				Date:          txn.CreatedAt,
				Description:   txn.Description,
			}
			if txn.TransactionType == Debit {
				balance = balance.Sub(amount)
				line.DebitAmount = &amount
			} else {
				balance = balance.Add(amount)
				line.CreditAmount = &amount
			}
			line.Balance = balance
			if !yield(line) {
				return
			}
		}
	}
}

// ReplayBalance returns the balance left after replaying every transaction.
func ReplayBalance(transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for line := range RunningBalance(transactions) {
		balance = line.Balance
	}
	return balance
}
