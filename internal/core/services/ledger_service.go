package services

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryWithTx
	handle     domain.LedgerHandle
}

// NewLedgerService creates the ledger service bound to the account resolved at startup.
func NewLedgerService(repo portsrepo.LedgerRepositoryWithTx, handle domain.LedgerHandle, options ...ServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: newBaseService(),
		ledgerRepo:  repo,
		handle:      handle,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetLedgerAccount(ctx context.Context) (*domain.LedgerAccount, error) {
	account, err := s.ledgerRepo.FindLedgerAccount(ctx, s.handle.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find ledger account", slog.String("account_id", s.handle.AccountID))
		return nil, err
	}
	return account, nil
}

// Reconstruct loads the transaction log once; the returned sequence replays it
// lazily and may be iterated any number of times.
func (s *ledgerService) Reconstruct(ctx context.Context) (*domain.LedgerAccount, iter.Seq[domain.StatementLine], error) {
	account, err := s.GetLedgerAccount(ctx)
	if err != nil {
		return nil, nil, err
	}
	txns, err := s.ledgerRepo.ListTransactionsByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger transactions", slog.String("account_id", account.AccountID))
		return nil, nil, err
	}
	return account, domain.RunningBalance(txns), nil
}

func (s *ledgerService) CheckIntegrity(ctx context.Context) (*domain.LedgerIntegrity, error) {
	account, err := s.GetLedgerAccount(ctx)
	if err != nil {
		return nil, err
	}
	txns, err := s.ledgerRepo.ListTransactionsByAccount(ctx, account.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger transactions", slog.String("account_id", account.AccountID))
		return nil, err
	}

	replayed := domain.ReplayBalance(txns)
	return &domain.LedgerIntegrity{
		AccountID:       account.AccountID,
		StoredBalance:   account.Balance,
		ReplayedBalance: replayed,
		Consistent:      account.Balance.Equal(replayed),
	}, nil
}

// Credit adds to the balance without writing a transaction.
func (s *ledgerService) Credit(ctx context.Context, amount decimal.Decimal, description string, userID string) (*domain.LedgerAccount, error) {
	return s.adjust(ctx, domain.Credit, amount, description, userID)
}

// Debit subtracts from the balance without writing a transaction.
func (s *ledgerService) Debit(ctx context.Context, amount decimal.Decimal, description string, userID string) (*domain.LedgerAccount, error) {
	return s.adjust(ctx, domain.Debit, amount, description, userID)
}

func (s *ledgerService) adjust(ctx context.Context, txnType domain.TransactionType, amount decimal.Decimal, description string, userID string) (*domain.LedgerAccount, error) {
	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }()

	account, err := s.ledgerRepo.FindLedgerAccountForUpdate(ctx, tx, s.handle.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock ledger account", slog.String("account_id", s.handle.AccountID))
		return nil, err
	}
	if err := account.Apply(txnType, amount); err != nil {
		s.LogInfo(ctx, "Ledger adjustment rejected",
			slog.String("type", string(txnType)),
			slog.String("amount", amount.String()),
			slog.String("reason", err.Error()))
		return nil, err
	}

	now := s.now()
	if err := s.ledgerRepo.UpdateLedgerBalanceInTx(ctx, tx, account.AccountID, account.Balance, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update ledger balance", slog.String("account_id", account.AccountID))
		return nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID

	s.LogInfo(ctx, "Ledger balance adjusted",
		slog.String("type", string(txnType)),
		slog.String("amount", amount.String()),
		slog.String("description", description),
		slog.String("balance", account.Balance.String()))
	return account, nil
}

// Record appends a transaction to the log without touching the balance.
func (s *ledgerService) Record(ctx context.Context, txnType domain.TransactionType, amount decimal.Decimal, description string, userID string) (*domain.Transaction, error) {
	if !txnType.IsValid() {
		return nil, apperrors.NewFieldError("transactionType", fmt.Sprintf("unknown transaction type %q", txnType))
	}
	if amount.IsNegative() {
		return nil, apperrors.NewFieldError("amount", "must not be negative")
	}
	if !domain.HasMoneyPrecision(amount) {
		return nil, apperrors.NewFieldError("amount", "must not have more than 2 decimal places")
	}

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		AccountID:       s.handle.AccountID,
		Amount:          amount,
		Description:     description,
		TransactionType: txnType,
		AuditFields:     domain.NewAuditFields(userID, s.now()),
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }()

	seq, err := s.ledgerRepo.SaveTransactionInTx(ctx, tx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to record transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	txn.Seq = seq
	return &txn, nil
}

// PostTransaction records a transaction and applies it to the balance in one unit of work.
func (s *ledgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest, userID string) (*domain.Transaction, *domain.LedgerAccount, error) {
	if req.Amount == nil {
		return nil, nil, apperrors.NewFieldError("amount", "is required")
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = s.ledgerRepo.Rollback(ctx, tx) }()

	txn, account, err := postToLedgerInTx(ctx, tx, s.ledgerRepo, s.handle, req.TransactionType, *req.Amount, req.Description, userID, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to post ledger transaction",
			slog.String("type", string(req.TransactionType)),
			slog.String("amount", req.Amount.String()))
		return nil, nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Ledger transaction posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("balance", account.Balance.String()))
	return txn, account, nil
}

// ResolveLedgerHandle finds or creates the named ledger account once at startup.
// A blank name falls back to the default account name.
func ResolveLedgerHandle(ctx context.Context, repo portsrepo.LedgerWriter, name string) (domain.LedgerHandle, error) {
	if name == "" {
		name = domain.DefaultLedgerAccountName
	}
	account, err := repo.EnsureLedgerAccount(ctx, name, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		return domain.LedgerHandle{}, fmt.Errorf("resolve ledger account %q: %w", name, err)
	}
	return domain.LedgerHandle{AccountID: account.AccountID, Name: account.Name}, nil
}
