package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecyclingServiceTestSuite struct {
	suite.Suite
	mockRecyclingRepo *MockRecyclingRepository
	mockMeterRepo     *MockMeterRepository
	mockIntakeRepo    *MockIntakeRepository
	mockStaffRepo     *MockStaffRepository
	mockPayrollRepo   *MockPayrollRepository
	mockPayableRepo   *MockPayableRepository
	service           portssvc.RecyclingSvcFacade
	reading           domain.MeterReading
	intake            domain.MaterialIntake
	staff             map[domain.StaffRole]domain.StaffMember
}

func (suite *RecyclingServiceTestSuite) SetupTest() {
	suite.mockRecyclingRepo = new(MockRecyclingRepository)
	suite.mockMeterRepo = new(MockMeterRepository)
	suite.mockIntakeRepo = new(MockIntakeRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.mockPayableRepo = new(MockPayableRepository)
	suite.service = services.NewRecyclingService(
		suite.mockRecyclingRepo,
		suite.mockMeterRepo,
		suite.mockIntakeRepo,
		suite.mockStaffRepo,
		suite.mockPayrollRepo,
		suite.mockPayableRepo,
		services.WithClock(fixedClock),
	)

	suite.reading = domain.MeterReading{ReadingID: "reading-1", MeterID: "M-1", Reading: dec("650"), Cost: decPtr("150")}
	suite.intake = domain.MaterialIntake{IntakeID: "intake-1", Serial: "S-001", CustomerID: "customer-1", Quantity: dec("120")}
	suite.staff = map[domain.StaffRole]domain.StaffMember{
		domain.RoleManager:  {StaffID: "manager-1", Role: domain.RoleManager},
		domain.RoleOperator: {StaffID: "operator-1", Role: domain.RoleOperator},
		domain.RolePacker:   {StaffID: "packer-1", Role: domain.RolePacker},
	}

	suite.mockRecyclingRepo.On("Begin", mock.Anything).Return(nil, nil).Maybe()
	suite.mockRecyclingRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	for _, member := range suite.staff {
		m := member
		suite.mockStaffRepo.On("FindStaffByID", mock.Anything, m.StaffID).Return(&m, nil).Maybe()
	}
}

func (suite *RecyclingServiceTestSuite) fullRequest() dto.CreateRecyclingOperationRequest {
	return dto.CreateRecyclingOperationRequest{
		MeterReadingID: strPtr(suite.reading.ReadingID),
		IntakeID:       strPtr(suite.intake.IntakeID),
		MaterialUsed:   decPtr("100"),
		Bangori:        decPtr("5"),
		Rate:           decPtr("5"),
		ManagerID:      strPtr("manager-1"),
		OperatorID:     strPtr("operator-1"),
		PackerID:       strPtr("packer-1"),
	}
}

func accrualChange(staffID string, role domain.StaffRole, delta string) any {
	want := dec(delta)
	return mock.MatchedBy(func(c domain.AccrualChange) bool {
		return c.StaffID == staffID && c.Role == role && c.Delta.Equal(want)
	})
}

func (suite *RecyclingServiceTestSuite) TestRecordOperation_DerivesCostsAndUpdatesBalances() {
	ctx := context.Background()
	suite.mockMeterRepo.On("FindMeterReadingByID", ctx, suite.reading.ReadingID).Return(&suite.reading, nil).Once()
	suite.mockIntakeRepo.On("FindIntakeByID", ctx, suite.intake.IntakeID).Return(&suite.intake, nil).Once()

	suite.mockPayrollRepo.On("UpsertAccrualInTx", ctx, mock.Anything, accrualChange("manager-1", domain.RoleManager, "300"), fixedNow).
		Return(&domain.PayrollAccrual{StaffID: "manager-1", Role: domain.RoleManager, AccruedAmount: dec("300")}, nil).Once()
	suite.mockPayrollRepo.On("UpsertAccrualInTx", ctx, mock.Anything, accrualChange("operator-1", domain.RoleOperator, "400"), fixedNow).
		Return(&domain.PayrollAccrual{StaffID: "operator-1", Role: domain.RoleOperator, AccruedAmount: dec("400")}, nil).Once()
	suite.mockPayrollRepo.On("UpsertAccrualInTx", ctx, mock.Anything, accrualChange("packer-1", domain.RolePacker, "300"), fixedNow).
		Return(&domain.PayrollAccrual{StaffID: "packer-1", Role: domain.RolePacker, AccruedAmount: dec("300")}, nil).Once()

	suite.mockPayableRepo.On("UpsertPayableInTx", ctx, mock.Anything, mock.MatchedBy(func(c domain.PayableChange) bool {
		return c.CustomerID == "customer-1" && c.Delta.Equal(dec("500")) && c.DueDate != nil && c.DueDate.Equal(fixedNow)
	}), fixedNow).Return(&domain.AccountPayable{CustomerID: "customer-1", Amount: dec("500"), DueDate: fixedNow}, nil).Once()

	suite.mockRecyclingRepo.On("SaveOperationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.RecyclingOperation")).Return(nil).Once()
	suite.mockRecyclingRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	outcome, err := suite.service.RecordOperation(ctx, suite.fullRequest(), "user-1")

	suite.Require().NoError(err)
	op := outcome.Operation
	suite.Equal("210.97", op.StandardElectricityCost.StringFixed(2))
	suite.True(op.Amount.Equal(dec("500")))
	suite.Require().NotNil(op.ElectricityVariance)
	suite.Equal("60.97", op.ElectricityVariance.StringFixed(2))
	suite.Nil(op.Amount1)
	suite.Equal("reading-1", *op.MeterReadingID)
	suite.Equal("intake-1", *op.IntakeID)
	suite.Len(outcome.Accruals, 3)
	suite.True(outcome.Payable.Amount.Equal(dec("500")))

	suite.mockPayrollRepo.AssertExpectations(suite.T())
	suite.mockPayableRepo.AssertExpectations(suite.T())
	suite.mockRecyclingRepo.AssertExpectations(suite.T())
}

func (suite *RecyclingServiceTestSuite) TestRecordOperation_MissingRateRejectedWithoutSideEffects() {
	req := suite.fullRequest()
	req.Rate = nil

	_, err := suite.service.RecordOperation(context.Background(), req, "user-1")

	suite.Require().Error(err)
	fe, ok := apperrors.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal("rate", fe.Field)
	suite.mockRecyclingRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
	suite.mockMeterRepo.AssertNotCalled(suite.T(), "FindMeterReadingByID", mock.Anything, mock.Anything)
}

func (suite *RecyclingServiceTestSuite) TestRecordOperation_MissingMaterialUsedRejected() {
	req := suite.fullRequest()
	req.MaterialUsed = nil

	_, err := suite.service.RecordOperation(context.Background(), req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRecyclingRepo.AssertNotCalled(suite.T(), "SaveOperationInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecyclingServiceTestSuite) TestRecordOperation_UnresolvedReferencesDegrade() {
	ctx := context.Background()
	req := suite.fullRequest()
	req.ManagerID = strPtr("ghost")
	req.PackerID = nil
	req.Date = &time.Time{}

	suite.mockMeterRepo.On("FindMeterReadingByID", ctx, suite.reading.ReadingID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockIntakeRepo.On("FindIntakeByID", ctx, suite.intake.IntakeID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockStaffRepo.On("FindStaffByID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	suite.mockPayrollRepo.On("UpsertAccrualInTx", ctx, mock.Anything, accrualChange("operator-1", domain.RoleOperator, "400"), fixedNow).
		Return(&domain.PayrollAccrual{StaffID: "operator-1", Role: domain.RoleOperator, AccruedAmount: dec("400")}, nil).Once()
	suite.mockRecyclingRepo.On("SaveOperationInTx", ctx, mock.Anything, mock.MatchedBy(func(op domain.RecyclingOperation) bool {
		return op.MeterReadingID == nil && op.IntakeID == nil && op.ManagerID == nil && op.PackerID == nil &&
			op.ElectricityVariance == nil && op.Bangori.Equal(dec("5"))
	})).Return(nil).Once()
	suite.mockRecyclingRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	outcome, err := suite.service.RecordOperation(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Len(outcome.Accruals, 1)
	suite.Nil(outcome.Payable)
	suite.Equal(fixedNow, outcome.Operation.Date)
	suite.mockPayableRepo.AssertNotCalled(suite.T(), "UpsertPayableInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPayrollRepo.AssertNumberOfCalls(suite.T(), "UpsertAccrualInTx", 1)
}

func (suite *RecyclingServiceTestSuite) TestRecordOperation_StaffInWrongSlotDropped() {
	ctx := context.Background()
	req := suite.fullRequest()
	req.MeterReadingID, req.IntakeID = nil, nil
	req.ManagerID = strPtr("packer-1")
	req.OperatorID = strPtr("packer-1")
	req.PackerID = nil

	suite.mockRecyclingRepo.On("SaveOperationInTx", ctx, mock.Anything, mock.MatchedBy(func(op domain.RecyclingOperation) bool {
		return op.ManagerID == nil && op.OperatorID == nil && op.PackerID == nil
	})).Return(nil).Once()
	suite.mockRecyclingRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	outcome, err := suite.service.RecordOperation(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Empty(outcome.Accruals)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "UpsertAccrualInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRecyclingRepo.AssertExpectations(suite.T())
}

func (suite *RecyclingServiceTestSuite) TestRecordOperation_NullMeterCostCountsAsZero() {
	ctx := context.Background()
	req := suite.fullRequest()
	req.IntakeID = nil
	req.ManagerID, req.OperatorID, req.PackerID = nil, nil, nil
	reading := domain.MeterReading{ReadingID: "reading-2"}
	req.MeterReadingID = strPtr("reading-2")

	suite.mockMeterRepo.On("FindMeterReadingByID", ctx, "reading-2").Return(&reading, nil).Once()
	suite.mockRecyclingRepo.On("SaveOperationInTx", ctx, mock.Anything, mock.AnythingOfType("domain.RecyclingOperation")).Return(nil).Once()
	suite.mockRecyclingRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	outcome, err := suite.service.RecordOperation(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(outcome.Operation.ElectricityVariance)
	suite.Equal("210.97", outcome.Operation.ElectricityVariance.StringFixed(2))
	suite.Empty(outcome.Accruals)
}

func (suite *RecyclingServiceTestSuite) TestRecordOperation_AccrualFailureAbortsBeforeSave() {
	ctx := context.Background()
	req := suite.fullRequest()
	req.MeterReadingID, req.IntakeID = nil, nil

	suite.mockPayrollRepo.On("UpsertAccrualInTx", ctx, mock.Anything, mock.Anything, fixedNow).Return(nil, assertErr).Once()

	_, err := suite.service.RecordOperation(ctx, req, "user-1")

	suite.ErrorIs(err, assertErr)
	suite.mockRecyclingRepo.AssertNotCalled(suite.T(), "SaveOperationInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRecyclingRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *RecyclingServiceTestSuite) TestListOperations_Pagination() {
	ctx := context.Background()
	created := fixedNow.Add(-time.Hour)
	ops := []domain.RecyclingOperation{
		{OperationID: "op-2", AuditFields: domain.AuditFields{CreatedAt: fixedNow}},
		{OperationID: "op-1", AuditFields: domain.AuditFields{CreatedAt: created}},
	}
	suite.mockRecyclingRepo.On("ListOperations", ctx, 2, (*time.Time)(nil), "").Return(ops, nil).Once()

	page, err := suite.service.ListOperations(ctx, dto.ListRecyclingOperationsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().NotNil(page.NextToken)

	suite.mockRecyclingRepo.On("ListOperations", ctx, 2, mock.MatchedBy(func(t *time.Time) bool {
		return t != nil && t.Equal(created)
	}), "op-1").Return([]domain.RecyclingOperation{}, nil).Once()

	page, err = suite.service.ListOperations(ctx, dto.ListRecyclingOperationsParams{Limit: 2, NextToken: *page.NextToken})
	suite.Require().NoError(err)
	suite.Nil(page.NextToken)
	suite.mockRecyclingRepo.AssertExpectations(suite.T())
}

func (suite *RecyclingServiceTestSuite) TestListOperations_InvalidToken() {
	_, err := suite.service.ListOperations(context.Background(), dto.ListRecyclingOperationsParams{NextToken: "%%%"})

	fe, ok := apperrors.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal("nextToken", fe.Field)
	suite.mockRecyclingRepo.AssertNotCalled(suite.T(), "ListOperations", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecyclingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecyclingServiceTestSuite))
}
