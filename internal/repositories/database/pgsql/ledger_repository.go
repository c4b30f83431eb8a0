package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/mapping"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for the ledger account and its transaction log.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

const ledgerAccountColumns = `account_id, name, balance, created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerAccount(row pgx.Row) (*domain.LedgerAccount, error) {
	var m models.LedgerAccount
	if err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	acc := mapping.ToDomainLedgerAccount(m)
	return &acc, nil
}

// FindLedgerAccount retrieves the ledger account by ID.
func (r *PgxLedgerRepository) FindLedgerAccount(ctx context.Context, accountID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE account_id = $1;`
	acc, err := scanLedgerAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger account %s: %w", accountID, err)
	}
	return acc, nil
}

// EnsureLedgerAccount creates the named account on first use. Concurrent
// callers converge on the same row through the unique name constraint.
func (r *PgxLedgerRepository) EnsureLedgerAccount(ctx context.Context, name string, now time.Time) (*domain.LedgerAccount, error) {
	query := `
		INSERT INTO ledger_accounts (account_id, name, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, 0, $3, 'system', $3, 'system')
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING ` + ledgerAccountColumns + `;
	`
	acc, err := scanLedgerAccount(r.Pool.QueryRow(ctx, query, uuid.NewString(), name, now))
	if err != nil {
		return nil, fmt.Errorf("failed to ensure ledger account %q: %w", name, err)
	}
	return acc, nil
}

// FindLedgerAccountForUpdate reads the account and holds a row lock until tx ends.
func (r *PgxLedgerRepository) FindLedgerAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.LedgerAccount, error) {
	query := `SELECT ` + ledgerAccountColumns + ` FROM ledger_accounts WHERE account_id = $1 FOR UPDATE;`
	acc, err := scanLedgerAccount(tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock ledger account %s: %w", accountID, err)
	}
	return acc, nil
}

func (r *PgxLedgerRepository) UpdateLedgerBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE ledger_accounts
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1;
	`
	ct, err := tx.Exec(ctx, query, accountID, balance, now, userID)
	if err != nil {
		return fmt.Errorf("failed to update balance for ledger account %s: %w", accountID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: ledger account %s not found during balance update", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// SaveTransactionInTx appends a row to the log. The sequence is assigned by the database.
func (r *PgxLedgerRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO ledger_transactions (transaction_id, account_id, amount, description, transaction_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq;
	`
	var seq int64
	err := tx.QueryRow(ctx, query,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.Description,
		m.TransactionType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&seq)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return 0, fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return seq, nil
}

// listTransactionsQuery orders by seq, which is assigned while the account row
// is locked and so matches the order balances were applied in. created_at is
// stamped before the lock and may disagree under concurrent posts.
const listTransactionsQuery = `
	SELECT transaction_id, seq, account_id, amount, description, transaction_type,
	       created_at, created_by, last_updated_at, last_updated_by
	FROM ledger_transactions
	WHERE account_id = $1
	ORDER BY seq;
`

// ListTransactionsByAccount returns the full log for the account in insertion order.
func (r *PgxLedgerRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, listTransactionsQuery, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for ledger account %s: %w", accountID, err)
	}
	defer rows.Close()

	var result []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.TransactionID,
			&t.Seq,
			&t.AccountID,
			&t.Amount,
			&t.Description,
			&t.TransactionType,
			&t.CreatedAt,
			&t.CreatedBy,
			&t.LastUpdatedAt,
			&t.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for ledger account %s: %w", accountID, err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows for ledger account %s: %w", accountID, err)
	}

	return mapping.ToDomainTransactions(result), nil
}
