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
	"github.com/google/uuid"
)

type intakeService struct {
	BaseService
	intakeRepo   portsrepo.IntakeRepositoryFacade
	customerRepo portsrepo.CustomerReader
}

func NewIntakeService(intakeRepo portsrepo.IntakeRepositoryFacade, customerRepo portsrepo.CustomerReader, options ...ServiceOption) portssvc.IntakeSvcFacade {
	svc := &intakeService{
		BaseService:  newBaseService(),
		intakeRepo:   intakeRepo,
		customerRepo: customerRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.IntakeSvcFacade = (*intakeService)(nil)

func duplicateSerialError(serial string) error {
	return &apperrors.FieldError{
		Field:   "serial",
		Message: "serial " + serial + " is already in use",
		Cause:   apperrors.ErrDuplicate,
	}
}

// CreateIntake checks the serial up front; the unique index is the final word
// when two requests race past the check.
func (s *intakeService) CreateIntake(ctx context.Context, req dto.CreateIntakeRequest, userID string) (*domain.MaterialIntake, error) {
	serial := strings.TrimSpace(req.Serial)
	if serial == "" {
		return nil, apperrors.NewFieldError("serial", "is required")
	}
	if req.Quantity == nil || req.Quantity.IsNegative() {
		return nil, apperrors.NewFieldError("quantity", "must be zero or greater")
	}

	if _, err := s.intakeRepo.FindIntakeBySerial(ctx, serial); err == nil {
		s.LogInfo(ctx, "Rejected intake with duplicate serial", slog.String("serial", serial))
		return nil, duplicateSerialError(serial)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check intake serial", slog.String("serial", serial))
		return nil, err
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldError("customerID", "customer does not exist")
		}
		return nil, err
	}

	now := s.now()
	intake := domain.MaterialIntake{
		IntakeID:     uuid.NewString(),
		Serial:       serial,
		CustomerID:   req.CustomerID,
		MaterialType: req.MaterialType,
		Quantity:     *req.Quantity,
		Date:         dateOrNow(req.Date, now),
		AuditFields:  domain.NewAuditFields(userID, now),
	}
	if err := s.intakeRepo.SaveIntake(ctx, intake); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, duplicateSerialError(serial)
		}
		s.LogError(ctx, err, "Failed to save intake", slog.String("serial", serial))
		return nil, err
	}

	s.LogInfo(ctx, "Material intake created",
		slog.String("intake_id", intake.IntakeID),
		slog.String("serial", intake.Serial))
	return &intake, nil
}

func (s *intakeService) GetIntake(ctx context.Context, intakeID string) (*domain.MaterialIntake, error) {
	return s.intakeRepo.FindIntakeByID(ctx, intakeID)
}

func (s *intakeService) ListIntakes(ctx context.Context, params dto.ListParams) ([]domain.MaterialIntake, error) {
	intakes, err := s.intakeRepo.ListIntakes(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list intakes")
		return nil, err
	}
	return intakes, nil
}
