package repositories

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
)

// CostingReader defines read operations for the flakes to pellets chain.
type CostingReader interface {
	FindFlakesIntakeBySerial(ctx context.Context, serial string) (*domain.FlakesIntake, error)
	FindFlakesCostByID(ctx context.Context, costID string) (*domain.FlakesCost, error)
	ListFlakesIntakes(ctx context.Context, limit int, offset int) ([]domain.FlakesIntake, error)
	ListFlakesCosts(ctx context.Context, limit int, offset int) ([]domain.FlakesCost, error)
	ListPelletsPrices(ctx context.Context, limit int, offset int) ([]domain.PelletsPrice, error)
}

// CostingWriter defines write operations for the costing chain. Serial and
// cost code collisions return ErrDuplicate.
type CostingWriter interface {
	SaveFlakesIntake(ctx context.Context, intake domain.FlakesIntake) error
	SaveFlakesCost(ctx context.Context, cost domain.FlakesCost) error
	SavePelletsPrice(ctx context.Context, price domain.PelletsPrice) error
}

type CostingRepositoryFacade interface {
	CostingReader
	CostingWriter
}
