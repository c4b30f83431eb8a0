package models

import "github.com/shopspring/decimal"

// TransactionType indicates whether a ledger row is a credit or a debit.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

// Transaction is a row of ledger_transactions.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	Seq             int64           `db:"seq"`
	AccountID       string          `db:"account_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionType TransactionType `db:"transaction_type"`
	AuditFields
}

// LedgerAccount is a row of ledger_accounts.
type LedgerAccount struct {
	AccountID string          `db:"account_id"`
	Name      string          `db:"name"`
	Balance   decimal.Decimal `db:"balance"`
	AuditFields
}
