package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

type MeteringReaderSvc interface {
	GetReading(ctx context.Context, readingID string) (*domain.MeterReading, error)
	ListReadings(ctx context.Context, params dto.ListParams) ([]domain.MeterReading, error)
	GetConfiguration(ctx context.Context) (*domain.ElectricityConfiguration, error)
}

type MeteringWriterSvc interface {
	// RecordReading appends a reading and derives its consumption and cost.
	RecordReading(ctx context.Context, req dto.RecordMeterReadingRequest, userID string) (*domain.MeterReading, error)
	UpdateConfiguration(ctx context.Context, req dto.UpdateElectricityConfigurationRequest, userID string) (*domain.ElectricityConfiguration, error)
}

type MeteringSvcFacade interface {
	MeteringReaderSvc
	MeteringWriterSvc
}
