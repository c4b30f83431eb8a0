package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/accounting"
	"github.com/google/uuid"
)

type costingService struct {
	BaseService
	costingRepo portsrepo.CostingRepositoryFacade
}

func NewCostingService(costingRepo portsrepo.CostingRepositoryFacade, options ...ServiceOption) portssvc.CostingSvcFacade {
	svc := &costingService{
		BaseService: newBaseService(),
		costingRepo: costingRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.CostingSvcFacade = (*costingService)(nil)

func duplicateFieldError(field, value string) error {
	return &apperrors.FieldError{
		Field:   field,
		Message: value + " is already in use",
		Cause:   apperrors.ErrDuplicate,
	}
}

func (s *costingService) CreateFlakesIntake(ctx context.Context, req dto.CreateFlakesIntakeRequest, userID string) (*domain.FlakesIntake, error) {
	serial := strings.TrimSpace(req.Serial)
	if serial == "" {
		return nil, apperrors.NewFieldError("serial", "is required")
	}

	if _, err := s.costingRepo.FindFlakesIntakeBySerial(ctx, serial); err == nil {
		s.LogInfo(ctx, "Rejected flakes intake with duplicate serial", slog.String("serial", serial))
		return nil, duplicateFieldError("serial", serial)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check flakes serial", slog.String("serial", serial))
		return nil, err
	}

	now := s.now()
	intake := domain.FlakesIntake{
		FlakesIntakeID: uuid.NewString(),
		Serial:         serial,
		FlakesType:     req.FlakesType,
		Quantity:       req.Quantity,
		UnitCost:       req.UnitCost,
		TotalCost1:     accounting.Product(req.Quantity, req.UnitCost),
		Date:           dateOrNow(req.Date, now),
		AuditFields:    domain.NewAuditFields(userID, now),
	}
	if err := s.costingRepo.SaveFlakesIntake(ctx, intake); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, duplicateFieldError("serial", serial)
		}
		s.LogError(ctx, err, "Failed to save flakes intake", slog.String("serial", serial))
		return nil, err
	}

	s.LogInfo(ctx, "Flakes intake created", slog.String("serial", serial))
	return &intake, nil
}

func (s *costingService) CreateFlakesCost(ctx context.Context, req dto.CreateFlakesCostRequest, userID string) (*domain.FlakesCost, error) {
	costID := strings.TrimSpace(req.CostID)
	if costID == "" {
		return nil, apperrors.NewFieldError("costID", "is required")
	}

	if _, err := s.costingRepo.FindFlakesCostByID(ctx, costID); err == nil {
		return nil, duplicateFieldError("costID", costID)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check flakes cost code", slog.String("cost_id", costID))
		return nil, err
	}

	now := s.now()
	cost := domain.FlakesCost{
		CostID:        costID,
		WashingCost:   req.WashingCost,
		TransportCost: req.TransportCost,
		PelletingCost: req.PelletingCost,
		OtherCost:     req.OtherCost,
		TotalCost2:    accounting.SumAll(req.WashingCost, req.TransportCost, req.PelletingCost, req.OtherCost),
		Date:          dateOrNow(req.Date, now),
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if err := s.costingRepo.SaveFlakesCost(ctx, cost); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, duplicateFieldError("costID", costID)
		}
		s.LogError(ctx, err, "Failed to save flakes cost", slog.String("cost_id", costID))
		return nil, err
	}

	s.LogInfo(ctx, "Flakes cost created", slog.String("cost_id", costID))
	return &cost, nil
}

// CreatePelletsPrice stores the sale stage. Parent references that do not
// resolve are dropped, and profit is then left unset.
func (s *costingService) CreatePelletsPrice(ctx context.Context, req dto.CreatePelletsPriceRequest, userID string) (*domain.PelletsPrice, error) {
	var intake *domain.FlakesIntake
	if serial := optionalRef(req.FlakesSerial); serial != nil {
		found, err := s.costingRepo.FindFlakesIntakeBySerial(ctx, *serial)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve flakes intake", slog.String("serial", *serial))
			return nil, err
		}
		intake = found
	}

	var cost *domain.FlakesCost
	if costID := optionalRef(req.CostID); costID != nil {
		found, err := s.costingRepo.FindFlakesCostByID(ctx, *costID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve flakes cost", slog.String("cost_id", *costID))
			return nil, err
		}
		cost = found
	}

	now := s.now()
	price := domain.PelletsPrice{
		PriceID:     uuid.NewString(),
		Date:        dateOrNow(req.Date, now),
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		Price:       accounting.Product(req.Quantity, req.UnitPrice),
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if intake != nil {
		serial := intake.Serial
		price.FlakesSerial = &serial
	}
	if cost != nil {
		costID := cost.CostID
		price.CostID = &costID
	}
	price.Profit = accounting.PelletsProfit(price.Price, intake, cost)

	if err := s.costingRepo.SavePelletsPrice(ctx, price); err != nil {
		s.LogError(ctx, err, "Failed to save pellets price", slog.String("price_id", price.PriceID))
		return nil, err
	}

	s.LogInfo(ctx, "Pellets price created", slog.String("price_id", price.PriceID))
	return &price, nil
}

func (s *costingService) ListFlakesIntakes(ctx context.Context, params dto.ListParams) ([]domain.FlakesIntake, error) {
	return s.costingRepo.ListFlakesIntakes(ctx, params.Limit, params.Offset)
}

func (s *costingService) ListFlakesCosts(ctx context.Context, params dto.ListParams) ([]domain.FlakesCost, error) {
	return s.costingRepo.ListFlakesCosts(ctx, params.Limit, params.Offset)
}

func (s *costingService) ListPelletsPrices(ctx context.Context, params dto.ListParams) ([]domain.PelletsPrice, error) {
	return s.costingRepo.ListPelletsPrices(ctx, params.Limit, params.Offset)
}
