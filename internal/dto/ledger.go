package dto

import (
	"iter"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostTransactionRequest records a ledger transaction and applies it to the balance.
type PostTransactionRequest struct {
	Amount          *decimal.Decimal       `json:"amount" binding:"required"`
	Description     string                 `json:"description" binding:"required,max=255"`
	TransactionType domain.TransactionType `json:"transactionType" binding:"required,oneof=credit debit"`
}

// LedgerAccountResponse mirrors domain.LedgerAccount.
type LedgerAccountResponse struct {
	AccountID     string          `json:"accountID"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// TransactionResponse mirrors domain.Transaction.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	AccountID       string                 `json:"accountID"`
	Amount          decimal.Decimal        `json:"amount"`
	Description     string                 `json:"description"`
	TransactionType domain.TransactionType `json:"transactionType"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
}

// PostTransactionResponse is returned after a transaction has been posted.
type PostTransactionResponse struct {
	Transaction TransactionResponse   `json:"transaction"`
	Account     LedgerAccountResponse `json:"account"`
}

// StatementResponse is the running-balance statement of the ledger account.
type StatementResponse struct {
	Account LedgerAccountResponse  `json:"account"`
	Lines   []domain.StatementLine `json:"lines"`
}

func ToLedgerAccountResponse(acc *domain.LedgerAccount) LedgerAccountResponse {
	return LedgerAccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		Balance:       acc.Balance,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		Amount:          txn.Amount,
		Description:     txn.Description,
		TransactionType: txn.TransactionType,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
}

// ToStatementResponse drains a running-balance sequence into a response body.
func ToStatementResponse(acc *domain.LedgerAccount, lines iter.Seq[domain.StatementLine]) StatementResponse {
	resp := StatementResponse{
		Account: ToLedgerAccountResponse(acc),
		Lines:   []domain.StatementLine{},
	}
	for line := range lines {
		resp.Lines = append(resp.Lines, line)
	}
	return resp
}
