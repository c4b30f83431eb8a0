package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/google/uuid"
)

type payableService struct {
	BaseService
	payableRepo  portsrepo.PayableRepositoryWithTx
	customerRepo portsrepo.CustomerReader
}

func NewPayableService(payableRepo portsrepo.PayableRepositoryWithTx, customerRepo portsrepo.CustomerReader, options ...ServiceOption) portssvc.PayableSvcFacade {
	svc := &payableService{
		BaseService:  newBaseService(),
		payableRepo:  payableRepo,
		customerRepo: customerRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.PayableSvcFacade = (*payableService)(nil)

func (s *payableService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.CustomerPayment, *domain.AccountPayable, error) {
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, nil, apperrors.NewFieldError("amount", "must be greater than zero")
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewFieldError("customerID", "customer does not exist")
		}
		return nil, nil, err
	}

	now := s.now()
	tx, err := s.payableRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, nil, err
	}
	defer func() { _ = s.payableRepo.Rollback(ctx, tx) }()

	payable, err := s.payableRepo.UpsertPayableInTx(ctx, tx, domain.PayableChange{
		CustomerID: req.CustomerID,
		Delta:      req.Amount.Neg(),
	}, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to reduce account payable", slog.String("customer_id", req.CustomerID))
		return nil, nil, err
	}

	payment := domain.CustomerPayment{
		PaymentID:   uuid.NewString(),
		CustomerID:  req.CustomerID,
		Amount:      *req.Amount,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, now),
	}
	if err := s.payableRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save customer payment", slog.String("customer_id", req.CustomerID))
		return nil, nil, err
	}

	if err := s.payableRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit customer payment", slog.String("customer_id", req.CustomerID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Customer payment recorded",
		slog.String("customer_id", req.CustomerID),
		slog.String("amount", payment.Amount.String()),
		slog.String("outstanding", payable.Amount.String()))
	return &payment, payable, nil
}

func (s *payableService) GetPayable(ctx context.Context, customerID string) (*domain.AccountPayable, error) {
	return s.payableRepo.FindPayableByCustomer(ctx, customerID)
}

func (s *payableService) ListPayables(ctx context.Context, params dto.ListParams) ([]domain.AccountPayable, error) {
	payables, err := s.payableRepo.ListPayables(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list account payables")
		return nil, err
	}
	return payables, nil
}

func (s *payableService) ListPayments(ctx context.Context, customerID string) ([]domain.CustomerPayment, error) {
	return s.payableRepo.ListPaymentsByCustomer(ctx, customerID)
}
