package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/accounting"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type recyclingService struct {
	BaseService
	recyclingRepo portsrepo.RecyclingRepositoryWithTx
	meterRepo     portsrepo.MeterReader
	intakeRepo    portsrepo.IntakeReader
	staffRepo     portsrepo.StaffReader
	payrollRepo   portsrepo.PayrollTransactionSupport
	payableRepo   portsrepo.PayableTransactionSupport
}

// NewRecyclingService wires the recorder to every repository it reads or
// updates. All writes go through the recycling repository's transaction.
func NewRecyclingService(
	recyclingRepo portsrepo.RecyclingRepositoryWithTx,
	meterRepo portsrepo.MeterReader,
	intakeRepo portsrepo.IntakeReader,
	staffRepo portsrepo.StaffReader,
	payrollRepo portsrepo.PayrollTransactionSupport,
	payableRepo portsrepo.PayableTransactionSupport,
	options ...ServiceOption,
) portssvc.RecyclingSvcFacade {
	svc := &recyclingService{
		BaseService:   newBaseService(),
		recyclingRepo: recyclingRepo,
		meterRepo:     meterRepo,
		intakeRepo:    intakeRepo,
		staffRepo:     staffRepo,
		payrollRepo:   payrollRepo,
		payableRepo:   payableRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.RecyclingSvcFacade = (*recyclingService)(nil)

// resolvedRefs holds the references of an operation that point at existing rows.
type resolvedRefs struct {
	meter  *domain.MeterReading
	intake *domain.MaterialIntake
	staff  map[domain.StaffRole]*domain.StaffMember
}

// resolveRefs looks up every optional reference. A reference that does not
// resolve, or names staff of another role, is dropped; any other lookup
// failure aborts.
func (s *recyclingService) resolveRefs(ctx context.Context, req dto.CreateRecyclingOperationRequest) (*resolvedRefs, error) {
	refs := &resolvedRefs{staff: make(map[domain.StaffRole]*domain.StaffMember, len(domain.StaffRoles))}

	if id := optionalRef(req.MeterReadingID); id != nil {
		reading, err := s.meterRepo.FindMeterReadingByID(ctx, *id)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve meter reading: %w", err)
		}
		refs.meter = reading
	}

	if id := optionalRef(req.IntakeID); id != nil {
		intake, err := s.intakeRepo.FindIntakeByID(ctx, *id)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to resolve intake: %w", err)
		}
		refs.intake = intake
	}

	staffRefs := map[domain.StaffRole]*string{
		domain.RoleManager:  req.ManagerID,
		domain.RoleOperator: req.OperatorID,
		domain.RolePacker:   req.PackerID,
	}
	for _, role := range domain.StaffRoles {
		id := optionalRef(staffRefs[role])
		if id == nil {
			continue
		}
		member, err := s.staffRepo.FindStaffByID(ctx, *id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to resolve %s: %w", role, err)
		}
		if member.Role != role {
			s.GetLogger(ctx).Warn("Staff member does not hold the assigned role",
				slog.String("staff_id", member.StaffID),
				slog.String("staff_role", string(member.Role)),
				slog.String("assigned_role", string(role)))
			continue
		}
		refs.staff[role] = member
	}
	return refs, nil
}

func staffIDOf(member *domain.StaffMember) *string {
	if member == nil {
		return nil
	}
	id := member.StaffID
	return &id
}

// buildOperation derives the computed columns of a new operation from its
// inputs and the references that resolved.
func buildOperation(req dto.CreateRecyclingOperationRequest, refs *resolvedRefs, userID string, now time.Time) domain.RecyclingOperation {
	materialUsed := *req.MaterialUsed
	rate := *req.Rate
	bangori := decimal.Zero
	if req.Bangori != nil {
		bangori = *req.Bangori
	}

	unrounded := accounting.StandardElectricityCost(materialUsed, rate)
	standard := accounting.RoundMoney(unrounded)
	amount := accounting.OperationAmount(materialUsed, rate)

	op := domain.RecyclingOperation{
		OperationID:             uuid.NewString(),
		MaterialUsed:            materialUsed,
		Bangori:                 bangori,
		Rate:                    rate,
		ManagerID:               staffIDOf(refs.staff[domain.RoleManager]),
		OperatorID:              staffIDOf(refs.staff[domain.RoleOperator]),
		PackerID:                staffIDOf(refs.staff[domain.RolePacker]),
		Amount:                  &amount,
		StandardElectricityCost: &standard,
		Date:                    dateOrNow(req.Date, now),
		AuditFields:             domain.NewAuditFields(userID, now),
	}
	if refs.meter != nil {
		id := refs.meter.ReadingID
		variance := accounting.RoundMoney(accounting.ElectricityVariance(unrounded, refs.meter.Cost))
		op.MeterReadingID = &id
		op.ElectricityVariance = &variance
	}
	if refs.intake != nil {
		id := refs.intake.IntakeID
		op.IntakeID = &id
	}
	return op
}

func (s *recyclingService) RecordOperation(ctx context.Context, req dto.CreateRecyclingOperationRequest, userID string) (*domain.RecyclingOutcome, error) {
	if req.Rate == nil {
		return nil, apperrors.NewFieldError("rate", "is required")
	}
	if req.MaterialUsed == nil {
		return nil, apperrors.NewFieldError("materialUsed", "is required")
	}

	refs, err := s.resolveRefs(ctx, req)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve recycling operation references")
		return nil, err
	}

	now := s.now()
	op := buildOperation(req, refs, userID, now)

	tx, err := s.recyclingRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, err
	}
	defer func() { _ = s.recyclingRepo.Rollback(ctx, tx) }()

	outcome := &domain.RecyclingOutcome{Accruals: []domain.PayrollAccrual{}}

	for _, assignment := range op.StaffAssignments() {
		if assignment.StaffID == nil {
			continue
		}
		accrual, err := s.payrollRepo.UpsertAccrualInTx(ctx, tx, domain.AccrualChange{
			StaffID: *assignment.StaffID,
			Role:    assignment.Role,
			Delta:   accounting.AccrualIncrement(assignment.Role, op.MaterialUsed),
		}, now)
		if err != nil {
			s.LogError(ctx, err, "Failed to update payroll accrual",
				slog.String("staff_id", *assignment.StaffID),
				slog.String("role", string(assignment.Role)))
			return nil, err
		}
		outcome.Accruals = append(outcome.Accruals, *accrual)
	}

	if refs.intake != nil {
		dueDate := dateOrNow(req.Date, now)
		payable, err := s.payableRepo.UpsertPayableInTx(ctx, tx, domain.PayableChange{
			CustomerID: refs.intake.CustomerID,
			Delta:      *op.Amount,
			DueDate:    &dueDate,
		}, now)
		if err != nil {
			s.LogError(ctx, err, "Failed to update account payable", slog.String("customer_id", refs.intake.CustomerID))
			return nil, err
		}
		outcome.Payable = payable
	}

	if err := s.recyclingRepo.SaveOperationInTx(ctx, tx, op); err != nil {
		s.LogError(ctx, err, "Failed to save recycling operation", slog.String("operation_id", op.OperationID))
		return nil, err
	}

	if err := s.recyclingRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit recycling operation", slog.String("operation_id", op.OperationID))
		return nil, err
	}

	outcome.Operation = op
	s.LogInfo(ctx, "Recycling operation recorded",
		slog.String("operation_id", op.OperationID),
		slog.String("amount", op.Amount.String()),
		slog.Int("accruals", len(outcome.Accruals)))
	return outcome, nil
}

func (s *recyclingService) GetOperation(ctx context.Context, operationID string) (*domain.RecyclingOperation, error) {
	return s.recyclingRepo.FindOperationByID(ctx, operationID)
}

// ListOperations pages newest first. A next token is returned only when the
// page is full.
func (s *recyclingService) ListOperations(ctx context.Context, params dto.ListRecyclingOperationsParams) (*dto.ListRecyclingOperationsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	var afterCreatedAt *time.Time
	var afterID string
	if params.NextToken != "" {
		createdAt, id, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			return nil, &apperrors.FieldError{Field: "nextToken", Message: "is not a valid page token", Cause: err}
		}
		afterCreatedAt = &createdAt
		afterID = id
	}

	ops, err := s.recyclingRepo.ListOperations(ctx, limit, afterCreatedAt, afterID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list recycling operations")
		return nil, err
	}

	resp := &dto.ListRecyclingOperationsResponse{Operations: ops}
	if len(ops) == limit {
		last := ops[len(ops)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.OperationID)
		resp.NextToken = &token
	}
	return resp, nil
}
