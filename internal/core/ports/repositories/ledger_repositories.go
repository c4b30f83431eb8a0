package repositories

import (
	"context"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for the ledger account and its log.
type LedgerReader interface {
	// FindLedgerAccount retrieves the ledger account by ID.
	FindLedgerAccount(ctx context.Context, accountID string) (*domain.LedgerAccount, error)

	// ListTransactionsByAccount returns every transaction for the account in
	// creation order (created_at, then insertion sequence).
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// LedgerWriter defines write operations that do not need a caller-managed transaction.
type LedgerWriter interface {
	// EnsureLedgerAccount returns the account with the given name, creating it
	// with a zero balance if it does not exist yet.
	EnsureLedgerAccount(ctx context.Context, name string, now time.Time) (*domain.LedgerAccount, error)
}

// LedgerTransactionSupport defines operations run inside a caller's transaction.
type LedgerTransactionSupport interface {
	// FindLedgerAccountForUpdate reads and row-locks the account.
	FindLedgerAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.LedgerAccount, error)

	// UpdateLedgerBalanceInTx persists a new balance for the account.
	UpdateLedgerBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, userID string, now time.Time) error

	// SaveTransactionInTx appends a transaction to the log and returns its sequence number.
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
	LedgerTransactionSupport
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction capabilities.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
