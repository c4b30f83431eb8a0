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

// PgxCostingRepository stores the flakes intake, flakes cost and pellets price stages.
type PgxCostingRepository struct {
	pool *pgxpool.Pool
}

func newPgxCostingRepository(pool *pgxpool.Pool) portsrepo.CostingRepositoryFacade {
	return &PgxCostingRepository{pool: pool}
}

var _ portsrepo.CostingRepositoryFacade = (*PgxCostingRepository)(nil)

const flakesIntakeColumns = `flakes_intake_id, serial, flakes_type, quantity, unit_cost, total_cost1, intake_date,
	created_at, created_by, last_updated_at, last_updated_by`

const flakesCostColumns = `cost_id, washing_cost, transport_cost, pelleting_cost, other_cost, total_cost2, cost_date,
	created_at, created_by, last_updated_at, last_updated_by`

const pelletsPriceColumns = `price_id, price_date, flakes_serial, cost_id, quantity, unit_price, price, profit,
	created_at, created_by, last_updated_at, last_updated_by`

func scanFlakesIntake(row pgx.Row) (*domain.FlakesIntake, error) {
	var m models.FlakesIntake
	if err := row.Scan(
		&m.FlakesIntakeID,
		&m.Serial,
		&m.FlakesType,
		&m.Quantity,
		&m.UnitCost,
		&m.TotalCost1,
		&m.IntakeDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	d := mapping.ToDomainFlakesIntake(m)
	return &d, nil
}

func scanFlakesCost(row pgx.Row) (*domain.FlakesCost, error) {
	var m models.FlakesCost
	if err := row.Scan(
		&m.CostID,
		&m.WashingCost,
		&m.TransportCost,
		&m.PelletingCost,
		&m.OtherCost,
		&m.TotalCost2,
		&m.CostDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	d := mapping.ToDomainFlakesCost(m)
	return &d, nil
}

func scanPelletsPrice(row pgx.Row) (*domain.PelletsPrice, error) {
	var m models.PelletsPrice
	if err := row.Scan(
		&m.PriceID,
		&m.PriceDate,
		&m.FlakesSerial,
		&m.CostID,
		&m.Quantity,
		&m.UnitPrice,
		&m.Price,
		&m.Profit,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	d := mapping.ToDomainPelletsPrice(m)
	return &d, nil
}

func (r *PgxCostingRepository) FindFlakesIntakeBySerial(ctx context.Context, serial string) (*domain.FlakesIntake, error) {
	query := `SELECT ` + flakesIntakeColumns + ` FROM flakes_intakes WHERE serial = $1;`
	d, err := scanFlakesIntake(r.pool.QueryRow(ctx, query, serial))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find flakes intake by serial %s: %w", serial, err)
	}
	return d, nil
}

func (r *PgxCostingRepository) FindFlakesCostByID(ctx context.Context, costID string) (*domain.FlakesCost, error) {
	query := `SELECT ` + flakesCostColumns + ` FROM flakes_costs WHERE cost_id = $1;`
	d, err := scanFlakesCost(r.pool.QueryRow(ctx, query, costID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find flakes cost %s: %w", costID, err)
	}
	return d, nil
}

func (r *PgxCostingRepository) ListFlakesIntakes(ctx context.Context, limit int, offset int) ([]domain.FlakesIntake, error) {
	query := `SELECT ` + flakesIntakeColumns + ` FROM flakes_intakes ORDER BY intake_date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query flakes intakes: %w", err)
	}
	defer rows.Close()

	result := []domain.FlakesIntake{}
	for rows.Next() {
		d, err := scanFlakesIntake(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flakes intake row: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flakes intake rows: %w", err)
	}
	return result, nil
}

func (r *PgxCostingRepository) ListFlakesCosts(ctx context.Context, limit int, offset int) ([]domain.FlakesCost, error) {
	query := `SELECT ` + flakesCostColumns + ` FROM flakes_costs ORDER BY cost_date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query flakes costs: %w", err)
	}
	defer rows.Close()

	result := []domain.FlakesCost{}
	for rows.Next() {
		d, err := scanFlakesCost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flakes cost row: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating flakes cost rows: %w", err)
	}
	return result, nil
}

func (r *PgxCostingRepository) ListPelletsPrices(ctx context.Context, limit int, offset int) ([]domain.PelletsPrice, error) {
	query := `SELECT ` + pelletsPriceColumns + ` FROM pellets_prices ORDER BY price_date DESC, created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query pellets prices: %w", err)
	}
	defer rows.Close()

	result := []domain.PelletsPrice{}
	for rows.Next() {
		d, err := scanPelletsPrice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pellets price row: %w", err)
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pellets price rows: %w", err)
	}
	return result, nil
}

func (r *PgxCostingRepository) SaveFlakesIntake(ctx context.Context, intake domain.FlakesIntake) error {
	m := mapping.ToModelFlakesIntake(intake)
	query := `
		INSERT INTO flakes_intakes (flakes_intake_id, serial, flakes_type, quantity, unit_cost, total_cost1, intake_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.FlakesIntakeID,
		m.Serial,
		m.FlakesType,
		m.Quantity,
		m.UnitCost,
		m.TotalCost1,
		m.IntakeDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: flakes intake with serial %s already exists", apperrors.ErrDuplicate, m.Serial)
		}
		return fmt.Errorf("failed to save flakes intake %s: %w", m.FlakesIntakeID, err)
	}
	return nil
}

func (r *PgxCostingRepository) SaveFlakesCost(ctx context.Context, cost domain.FlakesCost) error {
	m := mapping.ToModelFlakesCost(cost)
	query := `
		INSERT INTO flakes_costs (cost_id, washing_cost, transport_cost, pelleting_cost, other_cost, total_cost2, cost_date,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CostID,
		m.WashingCost,
		m.TransportCost,
		m.PelletingCost,
		m.OtherCost,
		m.TotalCost2,
		m.CostDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: flakes cost %s already exists", apperrors.ErrDuplicate, m.CostID)
		}
		return fmt.Errorf("failed to save flakes cost %s: %w", m.CostID, err)
	}
	return nil
}

func (r *PgxCostingRepository) SavePelletsPrice(ctx context.Context, price domain.PelletsPrice) error {
	m := mapping.ToModelPelletsPrice(price)
	query := `
		INSERT INTO pellets_prices (price_id, price_date, flakes_serial, cost_id, quantity, unit_price, price, profit,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PriceID,
		m.PriceDate,
		m.FlakesSerial,
		m.CostID,
		m.Quantity,
		m.UnitPrice,
		m.Price,
		m.Profit,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: pellets price %s already exists", apperrors.ErrDuplicate, m.PriceID)
		}
		return fmt.Errorf("failed to save pellets price %s: %w", m.PriceID, err)
	}
	return nil
}
