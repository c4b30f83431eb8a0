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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRecyclingRepository struct {
	BaseRepository
}

func newPgxRecyclingRepository(pool *pgxpool.Pool) portsrepo.RecyclingRepositoryWithTx {
	return &PgxRecyclingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.RecyclingRepositoryWithTx = (*PgxRecyclingRepository)(nil)

const recyclingColumns = `operation_id, meter_reading_id, intake_id, material_used, bangori, rate,
	manager_id, operator_id, packer_id, amount, amount1, standard_electricity_cost, electricity_variance, operation_date,
	created_at, created_by, last_updated_at, last_updated_by`

func scanRecyclingOperation(row pgx.Row) (*domain.RecyclingOperation, error) {
	var m models.RecyclingOperation
	if err := row.Scan(
		&m.OperationID,
		&m.MeterReadingID,
		&m.IntakeID,
		&m.MaterialUsed,
		&m.Bangori,
		&m.Rate,
		&m.ManagerID,
		&m.OperatorID,
		&m.PackerID,
		&m.Amount,
		&m.Amount1,
		&m.StandardElectricityCost,
		&m.ElectricityVariance,
		&m.OperationDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	op := mapping.ToDomainRecyclingOperation(m)
	return &op, nil
}

func (r *PgxRecyclingRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.RecyclingOperation, error) {
	query := `SELECT ` + recyclingColumns + ` FROM recycling_operations WHERE operation_id = $1;`
	op, err := scanRecyclingOperation(r.Pool.QueryRow(ctx, query, operationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recycling operation %s: %w", operationID, err)
	}
	return op, nil
}

// ListOperations returns operations newest first using a (created_at, operation_id) keyset cursor.
func (r *PgxRecyclingRepository) ListOperations(ctx context.Context, limit int, afterCreatedAt *time.Time, afterID string) ([]domain.RecyclingOperation, error) {
	baseQuery := `SELECT ` + recyclingColumns + ` FROM recycling_operations`
	orderByClause := `ORDER BY created_at DESC, operation_id DESC`

	var rows pgx.Rows
	var err error
	if afterCreatedAt != nil {
		query := baseQuery + ` WHERE (created_at, operation_id) < ($1, $2) ` + orderByClause + ` LIMIT $3;`
		rows, err = r.Pool.Query(ctx, query, *afterCreatedAt, afterID, defaultLimit(limit))
	} else {
		query := baseQuery + ` ` + orderByClause + ` LIMIT $1;`
		rows, err = r.Pool.Query(ctx, query, defaultLimit(limit))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query recycling operations: %w", err)
	}
	defer rows.Close()

	ops := []domain.RecyclingOperation{}
	for rows.Next() {
		op, err := scanRecyclingOperation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recycling operation row: %w", err)
		}
		ops = append(ops, *op)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recycling operation rows: %w", err)
	}
	return ops, nil
}

func (r *PgxRecyclingRepository) SaveOperationInTx(ctx context.Context, tx pgx.Tx, op domain.RecyclingOperation) error {
	m := mapping.ToModelRecyclingOperation(op)
	query := `
		INSERT INTO recycling_operations (operation_id, meter_reading_id, intake_id, material_used, bangori, rate,
			manager_id, operator_id, packer_id, amount, amount1, standard_electricity_cost, electricity_variance, operation_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, query,
		m.OperationID,
		m.MeterReadingID,
		m.IntakeID,
		m.MaterialUsed,
		m.Bangori,
		m.Rate,
		m.ManagerID,
		m.OperatorID,
		m.PackerID,
		m.Amount,
		m.Amount1,
		m.StandardElectricityCost,
		m.ElectricityVariance,
		m.OperationDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: recycling operation %s already exists", apperrors.ErrDuplicate, m.OperationID)
		}
		return fmt.Errorf("failed to save recycling operation %s: %w", m.OperationID, err)
	}
	return nil
}
