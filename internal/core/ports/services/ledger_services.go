package services

import (
	"context"
	"iter"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations on the ledger account.
type LedgerReaderSvc interface {
	GetLedgerAccount(ctx context.Context) (*domain.LedgerAccount, error)

	// Reconstruct returns the account together with a lazy running-balance
	// sequence over its transaction log.
	Reconstruct(ctx context.Context) (*domain.LedgerAccount, iter.Seq[domain.StatementLine], error)

	// CheckIntegrity replays the log and compares it against the stored balance.
	CheckIntegrity(ctx context.Context) (*domain.LedgerIntegrity, error)
}

// LedgerWriterSvc defines the ledger mutations. Credit and Debit touch only the
// balance; Record touches only the log. PostTransaction does both atomically.
type LedgerWriterSvc interface {
	Credit(ctx context.Context, amount decimal.Decimal, description string, userID string) (*domain.LedgerAccount, error)
	Debit(ctx context.Context, amount decimal.Decimal, description string, userID string) (*domain.LedgerAccount, error)
	Record(ctx context.Context, txnType domain.TransactionType, amount decimal.Decimal, description string, userID string) (*domain.Transaction, error)
	PostTransaction(ctx context.Context, req dto.PostTransactionRequest, userID string) (*domain.Transaction, *domain.LedgerAccount, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
