package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/google/uuid"
)

type meteringService struct {
	BaseService
	meterRepo portsrepo.MeterRepositoryWithTx
}

func NewMeteringService(repo portsrepo.MeterRepositoryWithTx, options ...ServiceOption) portssvc.MeteringSvcFacade {
	svc := &meteringService{
		BaseService: newBaseService(),
		meterRepo:   repo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.MeteringSvcFacade = (*meteringService)(nil)

func (s *meteringService) GetReading(ctx context.Context, readingID string) (*domain.MeterReading, error) {
	return s.meterRepo.FindMeterReadingByID(ctx, readingID)
}

func (s *meteringService) ListReadings(ctx context.Context, params dto.ListParams) ([]domain.MeterReading, error) {
	readings, err := s.meterRepo.ListMeterReadings(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list meter readings")
		return nil, err
	}
	return readings, nil
}

func (s *meteringService) GetConfiguration(ctx context.Context) (*domain.ElectricityConfiguration, error) {
	cfg, err := s.meterRepo.FindElectricityConfiguration(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("%w: electricity configuration has not been set", apperrors.ErrConfigurationAbsent)
	}
	return cfg, err
}

// RecordReading appends a reading under the meter sequence lock so that the
// previous reading is exactly the last one committed before it.
func (s *meteringService) RecordReading(ctx context.Context, req dto.RecordMeterReadingRequest, userID string) (*domain.MeterReading, error) {
	if req.Reading == nil {
		return nil, apperrors.NewFieldError("reading", "is required")
	}
	if !req.Shift.IsValid() {
		return nil, apperrors.NewFieldError("shift", "must be 1 (morning) or 2 (night)")
	}

	now := s.now()
	reading := domain.MeterReading{
		ReadingID:   uuid.NewString(),
		MeterID:     req.MeterID,
		Date:        dateOrNow(req.Date, now),
		Shift:       req.Shift,
		Reading:     *req.Reading,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	tx, err := s.meterRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = s.meterRepo.Rollback(ctx, tx) }()

	if err := s.meterRepo.LockMeterSequenceInTx(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to lock meter sequence")
		return nil, err
	}

	cfg, err := s.meterRepo.FindElectricityConfigurationInTx(ctx, tx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to read electricity configuration")
		return nil, err
	}
	if cfg == nil || cfg.FixedCostPerUnit == nil {
		return nil, fmt.Errorf("%w: fixed cost per unit is not set", apperrors.ErrConfigurationAbsent)
	}

	latest, err := s.meterRepo.FindLatestMeterReadingInTx(ctx, tx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read latest meter reading")
			return nil, err
		}
		latest = nil
	}

	previous := domain.ResolvePreviousReading(latest, cfg.InitialReading, reading.Reading)
	reading.ApplyBaseline(previous, *cfg.FixedCostPerUnit)

	seq, err := s.meterRepo.SaveMeterReadingInTx(ctx, tx, reading)
	if err != nil {
		s.LogError(ctx, err, "Failed to save meter reading", slog.String("reading_id", reading.ReadingID))
		return nil, err
	}
	if err := s.meterRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	reading.Seq = seq

	s.LogInfo(ctx, "Meter reading recorded",
		slog.String("reading_id", reading.ReadingID),
		slog.String("meter_id", reading.MeterID),
		slog.String("consumption", reading.Consumption.String()),
		slog.String("cost", reading.Cost.String()))
	return &reading, nil
}

// UpdateConfiguration merges the request into the stored configuration.
func (s *meteringService) UpdateConfiguration(ctx context.Context, req dto.UpdateElectricityConfigurationRequest, userID string) (*domain.ElectricityConfiguration, error) {
	cfg, err := s.meterRepo.FindElectricityConfiguration(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to read electricity configuration")
			return nil, err
		}
		cfg = &domain.ElectricityConfiguration{}
	}

	if req.FixedCostPerUnit != nil {
		if req.FixedCostPerUnit.IsNegative() {
			return nil, apperrors.NewFieldError("fixedCostPerUnit", "must not be negative")
		}
		cfg.FixedCostPerUnit = req.FixedCostPerUnit
	}
	if req.InitialReading != nil {
		cfg.InitialReading = req.InitialReading
	}
	cfg.LastUpdatedAt = s.now()
	cfg.LastUpdatedBy = userID

	if err := s.meterRepo.SaveElectricityConfiguration(ctx, *cfg); err != nil {
		s.LogError(ctx, err, "Failed to save electricity configuration")
		return nil, err
	}
	s.LogInfo(ctx, "Electricity configuration updated", slog.String("user_id", userID))
	return cfg, nil
}
