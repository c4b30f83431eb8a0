package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	recyclingRepo portsrepo.RecyclingReader
	intakeRepo    portsrepo.IntakeReader
}

func NewReportingService(
	reportingRepo portsrepo.ReportingRepository,
	recyclingRepo portsrepo.RecyclingReader,
	intakeRepo portsrepo.IntakeReader,
	options ...ServiceOption,
) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		BaseService:   newBaseService(),
		reportingRepo: reportingRepo,
		recyclingRepo: recyclingRepo,
		intakeRepo:    intakeRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// OperationLoss measures the operation against its intake batch. Without an
// intake the quantity counts as zero.
func (s *reportingService) OperationLoss(ctx context.Context, operationID string) (*domain.OperationLoss, error) {
	op, err := s.recyclingRepo.FindOperationByID(ctx, operationID)
	if err != nil {
		return nil, err
	}

	report := &domain.OperationLoss{Operation: *op}
	quantity := decimal.Zero
	if op.IntakeID != nil {
		intake, err := s.intakeRepo.FindIntakeByID(ctx, *op.IntakeID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load intake for operation", slog.String("operation_id", operationID))
			return nil, err
		}
		if intake != nil {
			report.Intake = intake
			quantity = intake.Quantity
		}
	}

	report.MaterialLost, report.PercentageLost = accounting.MaterialLoss(quantity, op.MaterialUsed, op.Bangori)
	return report, nil
}

func (s *reportingService) CustomerMetrics(ctx context.Context) ([]domain.IntakeMetrics, error) {
	metrics, err := s.reportingRepo.CustomerIntakeMetrics(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load customer intake metrics")
		return nil, err
	}
	for i := range metrics {
		m := &metrics[i]
		m.MaterialLost, m.PercentageLost = accounting.MaterialLoss(m.Quantity, m.MaterialUsed, m.Bangori)
	}
	return metrics, nil
}

func (s *reportingService) ElectricitySummary(ctx context.Context) ([]domain.ElectricitySummary, error) {
	summaries, err := s.reportingRepo.ElectricitySummaries(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load electricity summaries")
		return nil, err
	}
	for i := range summaries {
		sum := &summaries[i]
		if sum.OperationCount == 0 {
			sum.Variance = decimal.Zero
			continue
		}
		sum.Variance = accounting.ElectricityVariance(sum.TotalStandardCost, sum.Reading.Cost)
	}
	return summaries, nil
}
