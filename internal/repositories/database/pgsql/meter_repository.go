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

// meterSequenceLockKey is the advisory lock key guarding appends to meter_readings.
const meterSequenceLockKey int64 = 0x6d65746572

type PgxMeterRepository struct {
	BaseRepository
}

func newPgxMeterRepository(pool *pgxpool.Pool) portsrepo.MeterRepositoryWithTx {
	return &PgxMeterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MeterRepositoryWithTx = (*PgxMeterRepository)(nil)

const meterReadingColumns = `reading_id, seq, meter_id, reading_date, shift, reading, previous_reading, consumption, cost,
	created_at, created_by, last_updated_at, last_updated_by`

func scanMeterReading(row pgx.Row) (*domain.MeterReading, error) {
	var m models.MeterReading
	if err := row.Scan(
		&m.ReadingID,
		&m.Seq,
		&m.MeterID,
		&m.ReadingDate,
		&m.Shift,
		&m.Reading,
		&m.PreviousReading,
		&m.Consumption,
		&m.Cost,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	reading := mapping.ToDomainMeterReading(m)
	return &reading, nil
}

func scanElectricityConfiguration(row pgx.Row) (*domain.ElectricityConfiguration, error) {
	var m models.ElectricityConfiguration
	if err := row.Scan(&m.FixedCostPerUnit, &m.InitialReading, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: electricity configuration", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read electricity configuration: %w", err)
	}
	cfg := mapping.ToDomainElectricityConfiguration(m)
	return &cfg, nil
}

const electricityConfigurationQuery = `
	SELECT fixed_cost_per_unit, initial_reading, last_updated_at, last_updated_by
	FROM electricity_configuration
	WHERE id = 1;
`

func (r *PgxMeterRepository) FindMeterReadingByID(ctx context.Context, readingID string) (*domain.MeterReading, error) {
	query := `SELECT ` + meterReadingColumns + ` FROM meter_readings WHERE reading_id = $1;`
	reading, err := scanMeterReading(r.Pool.QueryRow(ctx, query, readingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find meter reading %s: %w", readingID, err)
	}
	return reading, nil
}

// ListMeterReadings returns readings newest first.
func (r *PgxMeterRepository) ListMeterReadings(ctx context.Context, limit int, offset int) ([]domain.MeterReading, error) {
	query := `SELECT ` + meterReadingColumns + ` FROM meter_readings ORDER BY seq DESC LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query meter readings: %w", err)
	}
	defer rows.Close()

	readings := []domain.MeterReading{}
	for rows.Next() {
		reading, err := scanMeterReading(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meter reading row: %w", err)
		}
		readings = append(readings, *reading)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating meter reading rows: %w", err)
	}
	return readings, nil
}

func (r *PgxMeterRepository) FindElectricityConfiguration(ctx context.Context) (*domain.ElectricityConfiguration, error) {
	return scanElectricityConfiguration(r.Pool.QueryRow(ctx, electricityConfigurationQuery))
}

// SaveElectricityConfiguration upserts the singleton row.
func (r *PgxMeterRepository) SaveElectricityConfiguration(ctx context.Context, cfg domain.ElectricityConfiguration) error {
	m := mapping.ToModelElectricityConfiguration(cfg)
	query := `
		INSERT INTO electricity_configuration (id, fixed_cost_per_unit, initial_reading, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET fixed_cost_per_unit = EXCLUDED.fixed_cost_per_unit,
		    initial_reading = EXCLUDED.initial_reading,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	if _, err := r.Pool.Exec(ctx, query, m.FixedCostPerUnit, m.InitialReading, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to save electricity configuration: %w", err)
	}
	return nil
}

// LockMeterSequenceInTx takes a transaction-scoped advisory lock, released on commit or rollback.
func (r *PgxMeterRepository) LockMeterSequenceInTx(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, meterSequenceLockKey); err != nil {
		return fmt.Errorf("failed to lock meter reading sequence: %w", err)
	}
	return nil
}

func (r *PgxMeterRepository) FindElectricityConfigurationInTx(ctx context.Context, tx pgx.Tx) (*domain.ElectricityConfiguration, error) {
	return scanElectricityConfiguration(tx.QueryRow(ctx, electricityConfigurationQuery))
}

func (r *PgxMeterRepository) FindLatestMeterReadingInTx(ctx context.Context, tx pgx.Tx) (*domain.MeterReading, error) {
	query := `SELECT ` + meterReadingColumns + ` FROM meter_readings ORDER BY seq DESC LIMIT 1;`
	reading, err := scanMeterReading(tx.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest meter reading: %w", err)
	}
	return reading, nil
}

func (r *PgxMeterRepository) SaveMeterReadingInTx(ctx context.Context, tx pgx.Tx, reading domain.MeterReading) (int64, error) {
	m := mapping.ToModelMeterReading(reading)
	query := `
		INSERT INTO meter_readings (reading_id, meter_id, reading_date, shift, reading, previous_reading, consumption, cost,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING seq;
	`
	var seq int64
	err := tx.QueryRow(ctx, query,
		m.ReadingID,
		m.MeterID,
		m.ReadingDate,
		m.Shift,
		m.Reading,
		m.PreviousReading,
		m.Consumption,
		m.Cost,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&seq)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: meter reading %s already exists", apperrors.ErrDuplicate, m.ReadingID)
		}
		return 0, fmt.Errorf("failed to save meter reading %s: %w", m.ReadingID, err)
	}
	return seq, nil
}
