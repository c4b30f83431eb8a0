package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

type IntakeSvcFacade interface {
	// CreateIntake rejects a serial that is already in use.
	CreateIntake(ctx context.Context, req dto.CreateIntakeRequest, userID string) (*domain.MaterialIntake, error)
	GetIntake(ctx context.Context, intakeID string) (*domain.MaterialIntake, error)
	ListIntakes(ctx context.Context, params dto.ListParams) ([]domain.MaterialIntake, error)
}
