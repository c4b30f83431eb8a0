package repositories

import (
	"context"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

type PayableReader interface {
	FindPayableByCustomer(ctx context.Context, customerID string) (*domain.AccountPayable, error)
	ListPayables(ctx context.Context, limit int, offset int) ([]domain.AccountPayable, error)
	ListPaymentsByCustomer(ctx context.Context, customerID string) ([]domain.CustomerPayment, error)
}

// PayableTransactionSupport defines payable mutations run inside a caller's transaction.
type PayableTransactionSupport interface {
	// UpsertPayableInTx creates the customer's payable at zero if missing, adds
	// change.Delta, applies change.DueDate when set and returns the updated row.
	UpsertPayableInTx(ctx context.Context, tx pgx.Tx, change domain.PayableChange, now time.Time) (*domain.AccountPayable, error)

	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CustomerPayment) error
}

type PayableRepositoryFacade interface {
	PayableReader
	PayableTransactionSupport
}

type PayableRepositoryWithTx interface {
	PayableRepositoryFacade
	TransactionManager
}
