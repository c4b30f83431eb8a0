package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

// CostingSvcFacade covers the flakes intake, processing cost and pellets price stages.
type CostingSvcFacade interface {
	CreateFlakesIntake(ctx context.Context, req dto.CreateFlakesIntakeRequest, userID string) (*domain.FlakesIntake, error)
	CreateFlakesCost(ctx context.Context, req dto.CreateFlakesCostRequest, userID string) (*domain.FlakesCost, error)
	CreatePelletsPrice(ctx context.Context, req dto.CreatePelletsPriceRequest, userID string) (*domain.PelletsPrice, error)
	ListFlakesIntakes(ctx context.Context, params dto.ListParams) ([]domain.FlakesIntake, error)
	ListFlakesCosts(ctx context.Context, params dto.ListParams) ([]domain.FlakesCost, error)
	ListPelletsPrices(ctx context.Context, params dto.ListParams) ([]domain.PelletsPrice, error)
}
