package services_test

import (
	"context"
	"testing"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PayrollServiceTestSuite struct {
	suite.Suite
	mockPayrollRepo *MockPayrollRepository
	mockStaffRepo   *MockStaffRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.PayrollSvcFacade
	operator        domain.StaffMember
}

func (suite *PayrollServiceTestSuite) SetupTest() {
	suite.mockPayrollRepo = new(MockPayrollRepository)
	suite.mockStaffRepo = new(MockStaffRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	handle := domain.LedgerHandle{AccountID: "ledger-1", Name: domain.DefaultLedgerAccountName}
	suite.service = services.NewPayrollService(suite.mockPayrollRepo, suite.mockStaffRepo, suite.mockLedgerRepo, handle, services.WithClock(fixedClock))
	suite.operator = domain.StaffMember{StaffID: "operator-1", Role: domain.RoleOperator, Name: "Bello"}

	suite.mockPayrollRepo.On("Begin", mock.Anything).Return(nil, nil).Maybe()
	suite.mockPayrollRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.mockStaffRepo.On("FindStaffByID", mock.Anything, "operator-1").Return(&suite.operator, nil).Maybe()
}

func (suite *PayrollServiceTestSuite) expectLedgerDebit(ctx context.Context, balance, remaining string) {
	suite.mockLedgerRepo.On("FindLedgerAccountForUpdate", ctx, mock.Anything, "ledger-1").
		Return(&domain.LedgerAccount{AccountID: "ledger-1", Balance: dec(balance)}, nil).Once()
	suite.mockLedgerRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(int64(1), nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalanceInTx", ctx, mock.Anything, "ledger-1", decEq(remaining), "user-1", fixedNow).Return(nil).Once()
}

func (suite *PayrollServiceTestSuite) TestPaySalary_ReducesAccrual() {
	ctx := context.Background()
	suite.expectLedgerDebit(ctx, "1000", "850")
	suite.mockPayrollRepo.On("DecrementAccrualInTx", ctx, mock.Anything, "operator-1", decEq("150"), fixedNow).
		Return(&domain.PayrollAccrual{StaffID: "operator-1", Role: domain.RoleOperator, AccruedAmount: dec("250")}, nil).Once()
	suite.mockPayrollRepo.On("SaveSalaryPaymentInTx", ctx, mock.Anything, mock.MatchedBy(func(p domain.SalaryPayment) bool {
		return p.StaffID == "operator-1" && p.Role == domain.RoleOperator && p.Description == "Salary payment to Bello"
	})).Return(nil).Once()
	suite.mockPayrollRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	resp, err := suite.service.PaySalary(ctx, dto.PaySalaryRequest{StaffID: "operator-1", Amount: decPtr("150")}, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(resp.Accrual)
	suite.True(resp.Accrual.AccruedAmount.Equal(dec("250")))
	suite.Equal(resp.Transaction.TransactionID, resp.Payment.TransactionID)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockPayrollRepo.AssertExpectations(suite.T())
}

func (suite *PayrollServiceTestSuite) TestPaySalary_NoAccrualStillPays() {
	ctx := context.Background()
	suite.expectLedgerDebit(ctx, "1000", "900")
	suite.mockPayrollRepo.On("DecrementAccrualInTx", ctx, mock.Anything, "operator-1", decEq("100"), fixedNow).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPayrollRepo.On("SaveSalaryPaymentInTx", ctx, mock.Anything, mock.AnythingOfType("domain.SalaryPayment")).Return(nil).Once()
	suite.mockPayrollRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	resp, err := suite.service.PaySalary(ctx, dto.PaySalaryRequest{StaffID: "operator-1", Amount: decPtr("100")}, "user-1")

	suite.Require().NoError(err)
	suite.Nil(resp.Accrual)
}

func (suite *PayrollServiceTestSuite) TestPaySalary_InsufficientBalanceAbortsEverything() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindLedgerAccountForUpdate", ctx, mock.Anything, "ledger-1").
		Return(&domain.LedgerAccount{AccountID: "ledger-1", Balance: dec("99.99")}, nil).Once()

	_, err := suite.service.PaySalary(ctx, dto.PaySalaryRequest{StaffID: "operator-1", Amount: decPtr("100")}, "user-1")

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "DecrementAccrualInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "SaveSalaryPaymentInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockPayrollRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *PayrollServiceTestSuite) TestPaySalary_UnknownStaff() {
	suite.mockStaffRepo.On("FindStaffByID", mock.Anything, "nobody").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.PaySalary(context.Background(), dto.PaySalaryRequest{StaffID: "nobody", Amount: decPtr("10")}, "user-1")

	fe, ok := apperrors.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal("staffID", fe.Field)
}

func TestPayrollServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayrollServiceTestSuite))
}
