package repositories

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MeterReader defines read operations for meter readings and configuration.
type MeterReader interface {
	FindMeterReadingByID(ctx context.Context, readingID string) (*domain.MeterReading, error)

	// ListMeterReadings returns readings newest first.
	ListMeterReadings(ctx context.Context, limit int, offset int) ([]domain.MeterReading, error)

	// FindElectricityConfiguration returns ErrNotFound when no configuration row exists.
	FindElectricityConfiguration(ctx context.Context) (*domain.ElectricityConfiguration, error)
}

// MeterWriter defines write operations for metering.
type MeterWriter interface {
	// SaveElectricityConfiguration upserts the singleton configuration row.
	SaveElectricityConfiguration(ctx context.Context, cfg domain.ElectricityConfiguration) error
}

// MeterTransactionSupport defines the operations used to append a reading atomically.
type MeterTransactionSupport interface {
	// LockMeterSequenceInTx serializes appends to the reading sequence until tx ends.
	LockMeterSequenceInTx(ctx context.Context, tx pgx.Tx) error

	FindElectricityConfigurationInTx(ctx context.Context, tx pgx.Tx) (*domain.ElectricityConfiguration, error)

	// FindLatestMeterReadingInTx returns the reading with the highest sequence
	// across all meters, or ErrNotFound when there are none.
	FindLatestMeterReadingInTx(ctx context.Context, tx pgx.Tx) (*domain.MeterReading, error)

	// SaveMeterReadingInTx inserts the reading and returns its assigned sequence number.
	SaveMeterReadingInTx(ctx context.Context, tx pgx.Tx, reading domain.MeterReading) (int64, error)
}

type MeterRepositoryFacade interface {
	MeterReader
	MeterWriter
	MeterTransactionSupport
}

type MeterRepositoryWithTx interface {
	MeterRepositoryFacade
	TransactionManager
}
