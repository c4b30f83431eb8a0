package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxIntakeRepository struct {
	pool *pgxpool.Pool
}

func newPgxIntakeRepository(pool *pgxpool.Pool) portsrepo.IntakeRepositoryFacade {
	return &PgxIntakeRepository{pool: pool}
}

var _ portsrepo.IntakeRepositoryFacade = (*PgxIntakeRepository)(nil)

const intakeColumns = `intake_id, serial, customer_id, material_type, quantity, intake_date, is_processed,
	created_at, created_by, last_updated_at, last_updated_by`

func scanIntake(row pgx.Row) (*domain.MaterialIntake, error) {
	var m models.MaterialIntake
	if err := row.Scan(
		&m.IntakeID,
		&m.Serial,
		&m.CustomerID,
		&m.MaterialType,
		&m.Quantity,
		&m.IntakeDate,
		&m.IsProcessed,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	in := mapping.ToDomainMaterialIntake(m)
	return &in, nil
}

// SaveIntake inserts the intake. The serial column is unique.
func (r *PgxIntakeRepository) SaveIntake(ctx context.Context, intake domain.MaterialIntake) error {
	m := mapping.ToModelMaterialIntake(intake)
	query := `
		INSERT INTO material_intakes (intake_id, serial, customer_id, material_type, quantity, intake_date, is_processed,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.IntakeID,
		m.Serial,
		m.CustomerID,
		m.MaterialType,
		m.Quantity,
		m.IntakeDate,
		m.IsProcessed,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: intake with serial %s already exists", apperrors.ErrDuplicate, m.Serial)
		}
		return fmt.Errorf("failed to save intake %s: %w", m.IntakeID, err)
	}
	return nil
}

func (r *PgxIntakeRepository) FindIntakeByID(ctx context.Context, intakeID string) (*domain.MaterialIntake, error) {
	query := `SELECT ` + intakeColumns + ` FROM material_intakes WHERE intake_id = $1;`
	in, err := scanIntake(r.pool.QueryRow(ctx, query, intakeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find intake %s: %w", intakeID, err)
	}
	return in, nil
}

func (r *PgxIntakeRepository) FindIntakeBySerial(ctx context.Context, serial string) (*domain.MaterialIntake, error) {
	query := `SELECT ` + intakeColumns + ` FROM material_intakes WHERE serial = $1;`
	in, err := scanIntake(r.pool.QueryRow(ctx, query, serial))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find intake by serial %s: %w", serial, err)
	}
	return in, nil
}

func (r *PgxIntakeRepository) ListIntakes(ctx context.Context, limit int, offset int) ([]domain.MaterialIntake, error) {
	query := `SELECT ` + intakeColumns + ` FROM material_intakes ORDER BY intake_date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query intakes: %w", err)
	}
	defer rows.Close()

	intakes := []domain.MaterialIntake{}
	for rows.Next() {
		in, err := scanIntake(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan intake row: %w", err)
		}
		intakes = append(intakes, *in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating intake rows: %w", err)
	}
	return intakes, nil
}
