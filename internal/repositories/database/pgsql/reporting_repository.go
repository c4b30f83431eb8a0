package pgsql

import (
	"context"
	"fmt"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// CustomerIntakeMetrics sums material used and bangori per intake across its operations.
func (r *reportingRepository) CustomerIntakeMetrics(ctx context.Context) ([]domain.IntakeMetrics, error) {
	query := `
		SELECT
			i.intake_id,
			i.serial,
			i.customer_id,
			c.name AS customer_name,
			i.intake_date,
			i.quantity,
			COALESCE(SUM(o.material_used), 0) AS material_used,
			COALESCE(SUM(o.bangori), 0) AS bangori
		FROM material_intakes i
		JOIN customers c ON c.customer_id = i.customer_id
		LEFT JOIN recycling_operations o ON o.intake_id = i.intake_id
		GROUP BY i.intake_id, i.serial, i.customer_id, c.name, i.intake_date, i.quantity
		ORDER BY i.intake_date DESC, i.serial
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying customer intake metrics: %w", err)
	}
	defer rows.Close()

	result := []domain.IntakeMetrics{}
	for rows.Next() {
		var row domain.IntakeMetrics
		if err := rows.Scan(
			&row.IntakeID,
			&row.Serial,
			&row.CustomerID,
			&row.CustomerName,
			&row.Date,
			&row.Quantity,
			&row.MaterialUsed,
			&row.Bangori,
		); err != nil {
			return nil, fmt.Errorf("error scanning customer intake metrics row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer intake metrics rows: %w", err)
	}
	return result, nil
}

// ElectricitySummaries aggregates the standard electricity cost billed against each meter reading.
func (r *reportingRepository) ElectricitySummaries(ctx context.Context) ([]domain.ElectricitySummary, error) {
	query := `
		SELECT
			m.reading_id, m.seq, m.meter_id, m.reading_date, m.shift, m.reading,
			m.previous_reading, m.consumption, m.cost,
			m.created_at, m.created_by, m.last_updated_at, m.last_updated_by,
			COUNT(o.operation_id) AS operation_count,
			COALESCE(SUM(o.material_used), 0) AS material_used,
			COALESCE(SUM(o.bangori), 0) AS bangori,
			COALESCE(SUM(o.standard_electricity_cost), 0) AS total_standard_cost
		FROM meter_readings m
		LEFT JOIN recycling_operations o ON o.meter_reading_id = m.reading_id
		GROUP BY m.reading_id
		ORDER BY m.seq DESC
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying electricity summaries: %w", err)
	}
	defer rows.Close()

	result := []domain.ElectricitySummary{}
	for rows.Next() {
		var m models.MeterReading
		var row domain.ElectricitySummary
		if err := rows.Scan(
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
			&row.OperationCount,
			&row.MaterialUsed,
			&row.Bangori,
			&row.TotalStandardCost,
		); err != nil {
			return nil, fmt.Errorf("error scanning electricity summary row: %w", err)
		}
		row.Reading = mapping.ToDomainMeterReading(m)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating electricity summary rows: %w", err)
	}
	return result, nil
}
