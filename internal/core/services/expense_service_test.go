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

type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo *MockExpenseRepository
	mockLedgerRepo  *MockLedgerRepository
	service         portssvc.ExpenseSvcFacade
	handle          domain.LedgerHandle
	category        domain.ExpenseCategory
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.handle = domain.LedgerHandle{AccountID: "ledger-1", Name: domain.DefaultLedgerAccountName}
	suite.service = services.NewExpenseService(suite.mockExpenseRepo, suite.mockLedgerRepo, suite.handle, services.WithClock(fixedClock))
	suite.category = domain.ExpenseCategory{CategoryID: "cat-1", Name: "Fuel"}

	suite.mockExpenseRepo.On("Begin", mock.Anything).Return(nil, nil).Maybe()
	suite.mockExpenseRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
	suite.mockExpenseRepo.On("FindCategoryByID", mock.Anything, "cat-1").Return(&suite.category, nil).Maybe()
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_DebitsLedger() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindLedgerAccountForUpdate", ctx, mock.Anything, "ledger-1").
		Return(&domain.LedgerAccount{AccountID: "ledger-1", Balance: dec("100")}, nil).Once()
	suite.mockLedgerRepo.On("SaveTransactionInTx", ctx, mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.TransactionType == domain.Debit && txn.Description == "Fuel"
	})).Return(int64(4), nil).Once()
	suite.mockLedgerRepo.On("UpdateLedgerBalanceInTx", ctx, mock.Anything, "ledger-1", decEq("60"), "user-1", fixedNow).Return(nil).Once()
	suite.mockExpenseRepo.On("SaveExpenseInTx", ctx, mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return !e.Approved && e.CreatedBy == "user-1" && e.Amount.Equal(dec("40"))
	})).Return(nil).Once()
	suite.mockExpenseRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()

	expense, txn, err := suite.service.CreateExpense(ctx, dto.CreateExpenseRequest{CategoryID: "cat-1", Amount: decPtr("40")}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(txn.TransactionID, expense.TransactionID)
	suite.False(expense.Approved)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_InsufficientBalanceCreatesNothing() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindLedgerAccountForUpdate", ctx, mock.Anything, "ledger-1").
		Return(&domain.LedgerAccount{AccountID: "ledger-1", Balance: dec("10")}, nil).Once()

	_, _, err := suite.service.CreateExpense(ctx, dto.CreateExpenseRequest{CategoryID: "cat-1", Amount: decPtr("40")}, "user-1")

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "SaveExpenseInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_UnknownCategory() {
	ctx := context.Background()
	suite.mockExpenseRepo.On("FindCategoryByID", ctx, "cat-404").Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.CreateExpense(ctx, dto.CreateExpenseRequest{CategoryID: "cat-404", Amount: decPtr("1")}, "user-1")

	fe, ok := apperrors.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal("categoryID", fe.Field)
}

func (suite *ExpenseServiceTestSuite) TestCreateExpense_NonPositiveAmount() {
	_, _, err := suite.service.CreateExpense(context.Background(), dto.CreateExpenseRequest{CategoryID: "cat-1", Amount: decPtr("0")}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *ExpenseServiceTestSuite) TestListExpenses_ScopedToCaller() {
	ctx := context.Background()
	suite.mockExpenseRepo.On("ListExpenses", ctx, "user-7", 20, 0).Return([]domain.Expense{{ExpenseID: "e-1"}}, nil).Once()

	expenses, err := suite.service.ListExpenses(ctx, "user-7", dto.ListParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(expenses, 1)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	suite.mockExpenseRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.ExpenseCategory")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateCategory(ctx, dto.CreateExpenseCategoryRequest{Name: "Fuel"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	fe, ok := apperrors.AsFieldError(err)
	suite.Require().True(ok)
	suite.Equal("name", fe.Field)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
