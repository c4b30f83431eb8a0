package handlers_test

import (
	"context"
	"errors"
	"iter"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedgerAccount(ctx context.Context) (*domain.LedgerAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerService) Reconstruct(ctx context.Context) (*domain.LedgerAccount, iter.Seq[domain.StatementLine], error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Get(1).(iter.Seq[domain.StatementLine]), args.Error(2)
}

func (m *MockLedgerService) CheckIntegrity(ctx context.Context) (*domain.LedgerIntegrity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerIntegrity), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, amount decimal.Decimal, description string, userID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, amount, description, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerService) Debit(ctx context.Context, amount decimal.Decimal, description string, userID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, amount, description, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerService) Record(ctx context.Context, txnType domain.TransactionType, amount decimal.Decimal, description string, userID string) (*domain.Transaction, error) {
	args := m.Called(ctx, txnType, amount, description, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest, userID string) (*domain.Transaction, *domain.LedgerAccount, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.LedgerAccount), args.Error(2)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock MeteringService ---
type MockMeteringService struct {
	mock.Mock
}

func (m *MockMeteringService) GetReading(ctx context.Context, readingID string) (*domain.MeterReading, error) {
	args := m.Called(ctx, readingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MeterReading), args.Error(1)
}

func (m *MockMeteringService) ListReadings(ctx context.Context, params dto.ListParams) ([]domain.MeterReading, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MeterReading), args.Error(1)
}

func (m *MockMeteringService) GetConfiguration(ctx context.Context) (*domain.ElectricityConfiguration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ElectricityConfiguration), args.Error(1)
}

func (m *MockMeteringService) RecordReading(ctx context.Context, req dto.RecordMeterReadingRequest, userID string) (*domain.MeterReading, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MeterReading), args.Error(1)
}

func (m *MockMeteringService) UpdateConfiguration(ctx context.Context, req dto.UpdateElectricityConfigurationRequest, userID string) (*domain.ElectricityConfiguration, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ElectricityConfiguration), args.Error(1)
}

var _ portssvc.MeteringSvcFacade = (*MockMeteringService)(nil)

// --- Mock IntakeService ---
type MockIntakeService struct {
	mock.Mock
}

func (m *MockIntakeService) CreateIntake(ctx context.Context, req dto.CreateIntakeRequest, userID string) (*domain.MaterialIntake, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterialIntake), args.Error(1)
}

func (m *MockIntakeService) GetIntake(ctx context.Context, intakeID string) (*domain.MaterialIntake, error) {
	args := m.Called(ctx, intakeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterialIntake), args.Error(1)
}

func (m *MockIntakeService) ListIntakes(ctx context.Context, params dto.ListParams) ([]domain.MaterialIntake, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialIntake), args.Error(1)
}

var _ portssvc.IntakeSvcFacade = (*MockIntakeService)(nil)

// --- Mock RecyclingService ---
type MockRecyclingService struct {
	mock.Mock
}

func (m *MockRecyclingService) GetOperation(ctx context.Context, operationID string) (*domain.RecyclingOperation, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecyclingOperation), args.Error(1)
}

func (m *MockRecyclingService) ListOperations(ctx context.Context, params dto.ListRecyclingOperationsParams) (*dto.ListRecyclingOperationsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRecyclingOperationsResponse), args.Error(1)
}

func (m *MockRecyclingService) RecordOperation(ctx context.Context, req dto.CreateRecyclingOperationRequest, userID string) (*domain.RecyclingOutcome, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecyclingOutcome), args.Error(1)
}

var _ portssvc.RecyclingSvcFacade = (*MockRecyclingService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) OperationLoss(ctx context.Context, operationID string) (*domain.OperationLoss, error) {
	args := m.Called(ctx, operationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperationLoss), args.Error(1)
}

func (m *MockReportingService) CustomerMetrics(ctx context.Context) ([]domain.IntakeMetrics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IntakeMetrics), args.Error(1)
}

func (m *MockReportingService) ElectricitySummary(ctx context.Context) ([]domain.ElectricitySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ElectricitySummary), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock ExpenseService ---
type MockExpenseService struct {
	mock.Mock
}

func (m *MockExpenseService) CreateCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseService) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

func (m *MockExpenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, *domain.Transaction, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Expense), args.Get(1).(*domain.Transaction), args.Error(2)
}

func (m *MockExpenseService) ListExpenses(ctx context.Context, userID string, params dto.ListParams) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

var _ portssvc.ExpenseSvcFacade = (*MockExpenseService)(nil)

// --- Mock CostingService ---
type MockCostingService struct {
	mock.Mock
}

func (m *MockCostingService) CreateFlakesIntake(ctx context.Context, req dto.CreateFlakesIntakeRequest, userID string) (*domain.FlakesIntake, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlakesIntake), args.Error(1)
}

func (m *MockCostingService) CreateFlakesCost(ctx context.Context, req dto.CreateFlakesCostRequest, userID string) (*domain.FlakesCost, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlakesCost), args.Error(1)
}

func (m *MockCostingService) CreatePelletsPrice(ctx context.Context, req dto.CreatePelletsPriceRequest, userID string) (*domain.PelletsPrice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PelletsPrice), args.Error(1)
}

func (m *MockCostingService) ListFlakesIntakes(ctx context.Context, params dto.ListParams) ([]domain.FlakesIntake, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlakesIntake), args.Error(1)
}

func (m *MockCostingService) ListFlakesCosts(ctx context.Context, params dto.ListParams) ([]domain.FlakesCost, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FlakesCost), args.Error(1)
}

func (m *MockCostingService) ListPelletsPrices(ctx context.Context, params dto.ListParams) ([]domain.PelletsPrice, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PelletsPrice), args.Error(1)
}

var _ portssvc.CostingSvcFacade = (*MockCostingService)(nil)

var assertErr = errors.New("connection reset")
