package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/handlers"
	"github.com/abdulhafizu/HafeezVentures2/internal/platform/config"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testUserID = "user-1"
	testIssuer = "hafeez-test"
)

type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string

	ledger    *MockLedgerService
	metering  *MockMeteringService
	intake    *MockIntakeService
	recycling *MockRecyclingService
	reporting *MockReportingService
	expense   *MockExpenseService
	costing   *MockCostingService
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.ledger = new(MockLedgerService)
	suite.metering = new(MockMeteringService)
	suite.intake = new(MockIntakeService)
	suite.recycling = new(MockRecyclingService)
	suite.reporting = new(MockReportingService)
	suite.expense = new(MockExpenseService)
	suite.costing = new(MockCostingService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		JWTIssuer:    testIssuer,
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{
		Ledger:    suite.ledger,
		Metering:  suite.metering,
		Intake:    suite.intake,
		Recycling: suite.recycling,
		Reporting: suite.reporting,
		Expense:   suite.expense,
		Costing:   suite.costing,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, nil)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.ledger.AssertExpectations(suite.T())
	suite.metering.AssertExpectations(suite.T())
	suite.intake.AssertExpectations(suite.T())
	suite.recycling.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
	suite.expense.AssertExpectations(suite.T())
	suite.costing.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, suite.jwtSecret, time.Hour, testIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *HandlerTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func (suite *HandlerTestSuite) TestHealth_NoAuthRequired() {
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlerTestSuite) TestMissingToken_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestWrongIssuer_Unauthorized() {
	token, err := utils.GenerateJWT(testUserID, suite.jwtSecret, time.Hour, "someone-else")
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/ledger", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlerTestSuite) TestRecordOperation_Created() {
	outcome := &domain.RecyclingOutcome{
		Operation: domain.RecyclingOperation{
			OperationID:             "op-1",
			IntakeID:                strPtr("intake-1"),
			MaterialUsed:            decimal.RequireFromString("1000"),
			Rate:                    decimal.RequireFromString("0.5"),
			Amount:                  decPtr("500"),
			StandardElectricityCost: decPtr("210.97"),
			ElectricityVariance:     decPtr("60.97"),
		},
		Accruals: []domain.PayrollAccrual{},
	}
	suite.recycling.On("RecordOperation", mock.Anything, mock.MatchedBy(func(req dto.CreateRecyclingOperationRequest) bool {
		return req.Rate != nil && req.Rate.Equal(decimal.RequireFromString("0.5")) &&
			req.MaterialUsed != nil && req.MaterialUsed.Equal(decimal.RequireFromString("1000")) &&
			req.IntakeID != nil && *req.IntakeID == "intake-1"
	}), testUserID).Return(outcome, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/recycling-operations", map[string]any{
		"intakeID":     "intake-1",
		"materialUsed": "1000",
		"rate":         0.5,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.RecyclingOutcome
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("op-1", got.Operation.OperationID)
	suite.True(got.Operation.Amount.Equal(decimal.RequireFromString("500")))
	suite.True(got.Operation.ElectricityVariance.Equal(decimal.RequireFromString("60.97")))
}

func (suite *HandlerTestSuite) TestRecordOperation_MissingRateIsFieldError() {
	suite.recycling.On("RecordOperation", mock.Anything, mock.Anything, testUserID).
		Return(nil, apperrors.NewFieldError("rate", "is required")).Once()

	w := suite.do(http.MethodPost, "/api/v1/recycling-operations", map[string]any{"materialUsed": "10"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("rate", suite.decodeError(w).Field)
}

func (suite *HandlerTestSuite) TestRecordOperation_MalformedBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/recycling-operations", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(testUserID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.recycling.AssertNotCalled(suite.T(), "RecordOperation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListOperations_PassesToken() {
	next := "b3AtOQ"
	suite.recycling.On("ListOperations", mock.Anything, dto.ListRecyclingOperationsParams{Limit: 2, NextToken: "b3AtMTA"}).
		Return(&dto.ListRecyclingOperationsResponse{
			Operations: []domain.RecyclingOperation{{OperationID: "op-10"}, {OperationID: "op-9"}},
			NextToken:  &next,
		}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/recycling-operations?limit=2&nextToken=b3AtMTA", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListRecyclingOperationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Operations, 2)
	suite.Require().NotNil(got.NextToken)
	suite.Equal(next, *got.NextToken)
}

func (suite *HandlerTestSuite) TestListOperations_LimitOutOfRange() {
	w := suite.do(http.MethodGet, "/api/v1/recycling-operations?limit=500", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestOperationLoss_NotFound() {
	suite.reporting.On("OperationLoss", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/recycling-operations/missing/loss", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateIntake_DuplicateSerial() {
	dup := &apperrors.FieldError{Field: "serial", Message: "already in use", Cause: apperrors.ErrDuplicate}
	suite.intake.On("CreateIntake", mock.Anything, mock.AnythingOfType("dto.CreateIntakeRequest"), testUserID).
		Return(nil, dup).Once()

	w := suite.do(http.MethodPost, "/api/v1/intakes", map[string]any{
		"serial":       "S-1",
		"customerID":   "cust-1",
		"materialType": "PET bottles",
		"quantity":     "120",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("serial", suite.decodeError(w).Field)
}

func (suite *HandlerTestSuite) TestCreateIntake_MaterialTypeWithDigitsRejected() {
	w := suite.do(http.MethodPost, "/api/v1/intakes", map[string]any{
		"serial":       "S-2",
		"customerID":   "cust-1",
		"materialType": "PET1",
		"quantity":     "120",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.intake.AssertNotCalled(suite.T(), "CreateIntake", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateFlakesIntake_SerialAtMaxLength() {
	serial := strings.Repeat("F", 100)
	suite.costing.On("CreateFlakesIntake", mock.Anything, mock.MatchedBy(func(req dto.CreateFlakesIntakeRequest) bool {
		return req.Serial == serial
	}), testUserID).Return(&domain.FlakesIntake{FlakesIntakeID: "flakes-1", Serial: serial, FlakesType: "PET flakes"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/flakes-intakes", map[string]any{
		"serial":     serial,
		"flakesType": "PET flakes",
	})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestCreateFlakesIntake_SerialTooLong() {
	w := suite.do(http.MethodPost, "/api/v1/flakes-intakes", map[string]any{
		"serial":     strings.Repeat("F", 101),
		"flakesType": "PET flakes",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.costing.AssertNotCalled(suite.T(), "CreateFlakesIntake", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateFlakesCost_CostIDAtMaxLength() {
	costID := strings.Repeat("C", 100)
	suite.costing.On("CreateFlakesCost", mock.Anything, mock.MatchedBy(func(req dto.CreateFlakesCostRequest) bool {
		return req.CostID == costID
	}), testUserID).Return(&domain.FlakesCost{CostID: costID}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/flakes-costs", map[string]any{"costID": costID})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *HandlerTestSuite) TestPostTransaction_InsufficientBalance() {
	suite.ledger.On("PostTransaction", mock.Anything, mock.AnythingOfType("dto.PostTransactionRequest"), testUserID).
		Return(nil, nil, apperrors.ErrInsufficientBalance).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", map[string]any{
		"amount":          "5000",
		"description":     "Diesel",
		"transactionType": "debit",
	})

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *HandlerTestSuite) TestPostTransaction_Created() {
	now := time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)
	txn := &domain.Transaction{
		TransactionID:   "txn-1",
		AccountID:       "acc-1",
		Amount:          decimal.RequireFromString("20"),
		Description:     "Top up",
		TransactionType: domain.Credit,
		AuditFields:     domain.AuditFields{CreatedAt: now, CreatedBy: testUserID},
	}
	acc := &domain.LedgerAccount{AccountID: "acc-1", Name: "General Expenses", Balance: decimal.RequireFromString("120")}
	suite.ledger.On("PostTransaction", mock.Anything, mock.AnythingOfType("dto.PostTransactionRequest"), testUserID).
		Return(txn, acc, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", map[string]any{
		"amount":          "20",
		"description":     "Top up",
		"transactionType": "credit",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var got dto.PostTransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal("txn-1", got.Transaction.TransactionID)
	suite.True(got.Account.Balance.Equal(decimal.RequireFromString("120")))
}

func (suite *HandlerTestSuite) TestPostTransaction_UnknownTypeRejectedByBinding() {
	w := suite.do(http.MethodPost, "/api/v1/ledger/transactions", map[string]any{
		"amount":          "20",
		"description":     "Top up",
		"transactionType": "transfer",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestStatement_DrainsRunningBalance() {
	acc := &domain.LedgerAccount{AccountID: "acc-1", Balance: decimal.RequireFromString("90")}
	lines := domain.RunningBalance([]domain.Transaction{
		{TransactionID: "t1", Amount: decimal.RequireFromString("100"), TransactionType: domain.Credit},
		{TransactionID: "t2", Amount: decimal.RequireFromString("10"), TransactionType: domain.Debit},
	})
	suite.ledger.On("Reconstruct", mock.Anything).Return(acc, lines, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/ledger/statement", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Require().Len(got.Lines, 2)
	suite.True(got.Lines[0].Balance.Equal(decimal.RequireFromString("100")))
	suite.True(got.Lines[1].Balance.Equal(decimal.RequireFromString("90")))
}

func (suite *HandlerTestSuite) TestGetConfiguration_Absent() {
	suite.metering.On("GetConfiguration", mock.Anything).Return(nil, apperrors.ErrConfigurationAbsent).Once()

	w := suite.do(http.MethodGet, "/api/v1/electricity-configuration", nil)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *HandlerTestSuite) TestListExpenses_ScopedToCaller() {
	suite.expense.On("ListExpenses", mock.Anything, testUserID, dto.ListParams{Limit: 20, Offset: 0}).
		Return([]domain.Expense{{ExpenseID: "exp-1"}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/expenses", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got dto.ListExpensesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got.Expenses, 1)
}

func (suite *HandlerTestSuite) TestUnexpectedErrorHidesDetail() {
	suite.reporting.On("CustomerMetrics", mock.Anything).Return(nil, assertErr).Once()

	w := suite.do(http.MethodGet, "/api/v1/reports/customer-metrics", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to build customer metrics", suite.decodeError(w).Error)
}
