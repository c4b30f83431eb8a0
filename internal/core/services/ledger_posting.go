package services

import (
	"context"
	"fmt"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// postToLedgerInTx locks the ledger account, applies the movement to its
// balance, appends the matching transaction and persists the new balance, all
// within tx. A debit above the balance fails before anything is written.
func postToLedgerInTx(
	ctx context.Context,
	tx pgx.Tx,
	repo portsrepo.LedgerTransactionSupport,
	handle domain.LedgerHandle,
	txnType domain.TransactionType,
	amount decimal.Decimal,
	description string,
	userID string,
	now time.Time,
) (*domain.Transaction, *domain.LedgerAccount, error) {
	account, err := repo.FindLedgerAccountForUpdate(ctx, tx, handle.AccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock ledger account: %w", err)
	}

	if err := account.Apply(txnType, amount); err != nil {
		return nil, nil, err
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       account.AccountID,
		Amount:          amount,
		Description:     description,
		TransactionType: txnType,
		AuditFields:     domain.NewAuditFields(userID, now),
	}
	seq, err := repo.SaveTransactionInTx(ctx, tx, txn)
	if err != nil {
		return nil, nil, err
	}
	txn.Seq = seq

	if err := repo.UpdateLedgerBalanceInTx(ctx, tx, account.AccountID, account.Balance, userID, now); err != nil {
		return nil, nil, err
	}
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	return &txn, account, nil
}
