package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
)

// ReportingSvcFacade derives read-only metrics from stored operations.
type ReportingSvcFacade interface {
	OperationLoss(ctx context.Context, operationID string) (*domain.OperationLoss, error)
	CustomerMetrics(ctx context.Context) ([]domain.IntakeMetrics, error)
	ElectricitySummary(ctx context.Context) ([]domain.ElectricitySummary, error)
}
