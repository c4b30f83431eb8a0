package repositories

import (
	"context"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RecyclingReader defines read operations for recycling operations.
type RecyclingReader interface {
	FindOperationByID(ctx context.Context, operationID string) (*domain.RecyclingOperation, error)

	// ListOperations returns operations newest first. When afterCreatedAt is set,
	// only operations strictly older than (afterCreatedAt, afterID) are returned.
	ListOperations(ctx context.Context, limit int, afterCreatedAt *time.Time, afterID string) ([]domain.RecyclingOperation, error)
}

// RecyclingTransactionSupport defines write operations run inside a caller's transaction.
type RecyclingTransactionSupport interface {
	SaveOperationInTx(ctx context.Context, tx pgx.Tx, op domain.RecyclingOperation) error
}

type RecyclingRepositoryFacade interface {
	RecyclingReader
	RecyclingTransactionSupport
}

type RecyclingRepositoryWithTx interface {
	RecyclingRepositoryFacade
	TransactionManager
}
