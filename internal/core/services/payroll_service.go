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

type payrollService struct {
	BaseService
	payrollRepo portsrepo.PayrollRepositoryWithTx
	staffRepo   portsrepo.StaffReader
	ledgerRepo  portsrepo.LedgerTransactionSupport
	handle      domain.LedgerHandle
}

func NewPayrollService(
	payrollRepo portsrepo.PayrollRepositoryWithTx,
	staffRepo portsrepo.StaffReader,
	ledgerRepo portsrepo.LedgerTransactionSupport,
	handle domain.LedgerHandle,
	options ...ServiceOption,
) portssvc.PayrollSvcFacade {
	svc := &payrollService{
		BaseService: newBaseService(),
		payrollRepo: payrollRepo,
		staffRepo:   staffRepo,
		ledgerRepo:  ledgerRepo,
		handle:      handle,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.PayrollSvcFacade = (*payrollService)(nil)

// PaySalary debits the ledger first; an insufficient balance leaves the
// accrual and the payment log untouched.
func (s *payrollService) PaySalary(ctx context.Context, req dto.PaySalaryRequest, userID string) (*dto.PaySalaryResponse, error) {
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, apperrors.NewFieldError("amount", "must be greater than zero")
	}

	staff, err := s.staffRepo.FindStaffByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewFieldError("staffID", "staff member does not exist")
		}
		s.LogError(ctx, err, "Failed to find staff member", slog.String("staff_id", req.StaffID))
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Salary payment to " + staff.Name
	}

	now := s.now()
	tx, err := s.payrollRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, err
	}
	defer func() { _ = s.payrollRepo.Rollback(ctx, tx) }()

	txn, _, err := postToLedgerInTx(ctx, tx, s.ledgerRepo, s.handle, domain.Debit, *req.Amount, description, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to debit ledger for salary", slog.String("staff_id", staff.StaffID))
		return nil, err
	}

	accrual, err := s.payrollRepo.DecrementAccrualInTx(ctx, tx, staff.StaffID, *req.Amount, now)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to reduce payroll accrual", slog.String("staff_id", staff.StaffID))
		return nil, err
	}

	payment := domain.SalaryPayment{
		PaymentID:     uuid.NewString(),
		StaffID:       staff.StaffID,
		Role:          staff.Role,
		Amount:        *req.Amount,
		Description:   description,
		TransactionID: txn.TransactionID,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if err := s.payrollRepo.SaveSalaryPaymentInTx(ctx, tx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save salary payment", slog.String("staff_id", staff.StaffID))
		return nil, err
	}

	if err := s.payrollRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit salary payment", slog.String("staff_id", staff.StaffID))
		return nil, err
	}

	s.LogInfo(ctx, "Salary paid",
		slog.String("staff_id", staff.StaffID),
		slog.String("amount", payment.Amount.String()),
		slog.String("transaction_id", txn.TransactionID))
	return &dto.PaySalaryResponse{
		Payment:     payment,
		Accrual:     accrual,
		Transaction: dto.ToTransactionResponse(txn),
	}, nil
}

func (s *payrollService) ListAccruals(ctx context.Context) ([]domain.PayrollAccrual, error) {
	accruals, err := s.payrollRepo.ListAccruals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payroll accruals")
		return nil, err
	}
	return accruals, nil
}

func (s *payrollService) ListSalaryPayments(ctx context.Context, params dto.ListParams) ([]domain.SalaryPayment, error) {
	payments, err := s.payrollRepo.ListSalaryPayments(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list salary payments")
		return nil, err
	}
	return payments, nil
}

func (s *payrollService) SalarySummary(ctx context.Context) ([]domain.RoleSalarySummary, error) {
	return s.payrollRepo.SummarizeSalaries(ctx)
}
