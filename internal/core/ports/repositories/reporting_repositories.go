package repositories

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
)

// ReportingRepository defines aggregate read queries used by reports.
type ReportingRepository interface {
	// CustomerIntakeMetrics returns, per intake, the quantity consumed by
	// recycling operations. Loss fields are left for the caller to derive.
	CustomerIntakeMetrics(ctx context.Context) ([]domain.IntakeMetrics, error)

	// ElectricitySummaries returns, per meter reading, the operation count and
	// the sums of material, bangori and standard electricity cost. Variance is
	// left for the caller.
	ElectricitySummaries(ctx context.Context) ([]domain.ElectricitySummary, error)
}
