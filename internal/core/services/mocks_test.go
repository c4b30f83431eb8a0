package services_test

import (
	"context"
	"errors"
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// getPtr returns args[i] as *T, tolerating an untyped nil.
func getPtr[T any](args mock.Arguments, i int) *T {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).(*T)
}

func getSlice[T any](args mock.Arguments, i int) []T {
	if args.Get(i) == nil {
		return nil
	}
	return args.Get(i).([]T)
}

func getTx(args mock.Arguments) pgx.Tx {
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(pgx.Tx)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryWithTx = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return getTx(args), args.Error(1)
}

func (m *MockLedgerRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockLedgerRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockLedgerRepository) FindLedgerAccount(ctx context.Context, accountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, accountID)
	return getPtr[domain.LedgerAccount](args, 0), args.Error(1)
}

func (m *MockLedgerRepository) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	return getSlice[domain.Transaction](args, 0), args.Error(1)
}

func (m *MockLedgerRepository) EnsureLedgerAccount(ctx context.Context, name string, now time.Time) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, name, now)
	return getPtr[domain.LedgerAccount](args, 0), args.Error(1)
}

func (m *MockLedgerRepository) FindLedgerAccountForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, tx, accountID)
	return getPtr[domain.LedgerAccount](args, 0), args.Error(1)
}

func (m *MockLedgerRepository) UpdateLedgerBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, userID string, now time.Time) error {
	return m.Called(ctx, tx, accountID, balance, userID, now).Error(0)
}

func (m *MockLedgerRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error) {
	args := m.Called(ctx, tx, txn)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock MeterRepository ---
type MockMeterRepository struct {
	mock.Mock
}

var _ portsrepo.MeterRepositoryWithTx = (*MockMeterRepository)(nil)

func (m *MockMeterRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return getTx(args), args.Error(1)
}

func (m *MockMeterRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockMeterRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockMeterRepository) FindMeterReadingByID(ctx context.Context, readingID string) (*domain.MeterReading, error) {
	args := m.Called(ctx, readingID)
	return getPtr[domain.MeterReading](args, 0), args.Error(1)
}

func (m *MockMeterRepository) ListMeterReadings(ctx context.Context, limit int, offset int) ([]domain.MeterReading, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.MeterReading](args, 0), args.Error(1)
}

func (m *MockMeterRepository) FindElectricityConfiguration(ctx context.Context) (*domain.ElectricityConfiguration, error) {
	args := m.Called(ctx)
	return getPtr[domain.ElectricityConfiguration](args, 0), args.Error(1)
}

func (m *MockMeterRepository) SaveElectricityConfiguration(ctx context.Context, cfg domain.ElectricityConfiguration) error {
	return m.Called(ctx, cfg).Error(0)
}

func (m *MockMeterRepository) LockMeterSequenceInTx(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockMeterRepository) FindElectricityConfigurationInTx(ctx context.Context, tx pgx.Tx) (*domain.ElectricityConfiguration, error) {
	args := m.Called(ctx, tx)
	return getPtr[domain.ElectricityConfiguration](args, 0), args.Error(1)
}

func (m *MockMeterRepository) FindLatestMeterReadingInTx(ctx context.Context, tx pgx.Tx) (*domain.MeterReading, error) {
	args := m.Called(ctx, tx)
	return getPtr[domain.MeterReading](args, 0), args.Error(1)
}

func (m *MockMeterRepository) SaveMeterReadingInTx(ctx context.Context, tx pgx.Tx, reading domain.MeterReading) (int64, error) {
	args := m.Called(ctx, tx, reading)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	return getPtr[domain.Customer](args, 0), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.Customer](args, 0), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	return m.Called(ctx, customer).Error(0)
}

// --- Mock StaffRepository ---
type MockStaffRepository struct {
	mock.Mock
}

var _ portsrepo.StaffRepositoryFacade = (*MockStaffRepository)(nil)

func (m *MockStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	args := m.Called(ctx, staffID)
	return getPtr[domain.StaffMember](args, 0), args.Error(1)
}

func (m *MockStaffRepository) ListStaff(ctx context.Context, role *domain.StaffRole, limit int, offset int) ([]domain.StaffMember, error) {
	args := m.Called(ctx, role, limit, offset)
	return getSlice[domain.StaffMember](args, 0), args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	return m.Called(ctx, staff).Error(0)
}

// --- Mock IntakeRepository ---
type MockIntakeRepository struct {
	mock.Mock
}

var _ portsrepo.IntakeRepositoryFacade = (*MockIntakeRepository)(nil)

func (m *MockIntakeRepository) FindIntakeByID(ctx context.Context, intakeID string) (*domain.MaterialIntake, error) {
	args := m.Called(ctx, intakeID)
	return getPtr[domain.MaterialIntake](args, 0), args.Error(1)
}

func (m *MockIntakeRepository) FindIntakeBySerial(ctx context.Context, serial string) (*domain.MaterialIntake, error) {
	args := m.Called(ctx, serial)
	return getPtr[domain.MaterialIntake](args, 0), args.Error(1)
}

func (m *MockIntakeRepository) ListIntakes(ctx context.Context, limit int, offset int) ([]domain.MaterialIntake, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.MaterialIntake](args, 0), args.Error(1)
}

func (m *MockIntakeRepository) SaveIntake(ctx context.Context, intake domain.MaterialIntake) error {
	return m.Called(ctx, intake).Error(0)
}

// --- Mock RecyclingRepository ---
type MockRecyclingRepository struct {
	mock.Mock
}

var _ portsrepo.RecyclingRepositoryWithTx = (*MockRecyclingRepository)(nil)

func (m *MockRecyclingRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return getTx(args), args.Error(1)
}

func (m *MockRecyclingRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockRecyclingRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockRecyclingRepository) FindOperationByID(ctx context.Context, operationID string) (*domain.RecyclingOperation, error) {
	args := m.Called(ctx, operationID)
	return getPtr[domain.RecyclingOperation](args, 0), args.Error(1)
}

func (m *MockRecyclingRepository) ListOperations(ctx context.Context, limit int, afterCreatedAt *time.Time, afterID string) ([]domain.RecyclingOperation, error) {
	args := m.Called(ctx, limit, afterCreatedAt, afterID)
	return getSlice[domain.RecyclingOperation](args, 0), args.Error(1)
}

func (m *MockRecyclingRepository) SaveOperationInTx(ctx context.Context, tx pgx.Tx, op domain.RecyclingOperation) error {
	return m.Called(ctx, tx, op).Error(0)
}

// --- Mock PayrollRepository ---
type MockPayrollRepository struct {
	mock.Mock
}

var _ portsrepo.PayrollRepositoryWithTx = (*MockPayrollRepository)(nil)

func (m *MockPayrollRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return getTx(args), args.Error(1)
}

func (m *MockPayrollRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPayrollRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPayrollRepository) ListAccruals(ctx context.Context) ([]domain.PayrollAccrual, error) {
	args := m.Called(ctx)
	return getSlice[domain.PayrollAccrual](args, 0), args.Error(1)
}

func (m *MockPayrollRepository) FindAccrualByStaff(ctx context.Context, staffID string) (*domain.PayrollAccrual, error) {
	args := m.Called(ctx, staffID)
	return getPtr[domain.PayrollAccrual](args, 0), args.Error(1)
}

func (m *MockPayrollRepository) ListSalaryPayments(ctx context.Context, limit int, offset int) ([]domain.SalaryPayment, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.SalaryPayment](args, 0), args.Error(1)
}

func (m *MockPayrollRepository) SummarizeSalaries(ctx context.Context) ([]domain.RoleSalarySummary, error) {
	args := m.Called(ctx)
	return getSlice[domain.RoleSalarySummary](args, 0), args.Error(1)
}

func (m *MockPayrollRepository) UpsertAccrualInTx(ctx context.Context, tx pgx.Tx, change domain.AccrualChange, now time.Time) (*domain.PayrollAccrual, error) {
	args := m.Called(ctx, tx, change, now)
	return getPtr[domain.PayrollAccrual](args, 0), args.Error(1)
}

func (m *MockPayrollRepository) DecrementAccrualInTx(ctx context.Context, tx pgx.Tx, staffID string, amount decimal.Decimal, now time.Time) (*domain.PayrollAccrual, error) {
	args := m.Called(ctx, tx, staffID, amount, now)
	return getPtr[domain.PayrollAccrual](args, 0), args.Error(1)
}

func (m *MockPayrollRepository) SaveSalaryPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SalaryPayment) error {
	return m.Called(ctx, tx, payment).Error(0)
}

// --- Mock PayableRepository ---
type MockPayableRepository struct {
	mock.Mock
}

var _ portsrepo.PayableRepositoryWithTx = (*MockPayableRepository)(nil)

func (m *MockPayableRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return getTx(args), args.Error(1)
}

func (m *MockPayableRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPayableRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockPayableRepository) FindPayableByCustomer(ctx context.Context, customerID string) (*domain.AccountPayable, error) {
	args := m.Called(ctx, customerID)
	return getPtr[domain.AccountPayable](args, 0), args.Error(1)
}

func (m *MockPayableRepository) ListPayables(ctx context.Context, limit int, offset int) ([]domain.AccountPayable, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.AccountPayable](args, 0), args.Error(1)
}

func (m *MockPayableRepository) ListPaymentsByCustomer(ctx context.Context, customerID string) ([]domain.CustomerPayment, error) {
	args := m.Called(ctx, customerID)
	return getSlice[domain.CustomerPayment](args, 0), args.Error(1)
}

func (m *MockPayableRepository) UpsertPayableInTx(ctx context.Context, tx pgx.Tx, change domain.PayableChange, now time.Time) (*domain.AccountPayable, error) {
	args := m.Called(ctx, tx, change, now)
	return getPtr[domain.AccountPayable](args, 0), args.Error(1)
}

func (m *MockPayableRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CustomerPayment) error {
	return m.Called(ctx, tx, payment).Error(0)
}

// --- Mock CostingRepository ---
type MockCostingRepository struct {
	mock.Mock
}

var _ portsrepo.CostingRepositoryFacade = (*MockCostingRepository)(nil)

func (m *MockCostingRepository) FindFlakesIntakeBySerial(ctx context.Context, serial string) (*domain.FlakesIntake, error) {
	args := m.Called(ctx, serial)
	return getPtr[domain.FlakesIntake](args, 0), args.Error(1)
}

func (m *MockCostingRepository) FindFlakesCostByID(ctx context.Context, costID string) (*domain.FlakesCost, error) {
	args := m.Called(ctx, costID)
	return getPtr[domain.FlakesCost](args, 0), args.Error(1)
}

func (m *MockCostingRepository) ListFlakesIntakes(ctx context.Context, limit int, offset int) ([]domain.FlakesIntake, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.FlakesIntake](args, 0), args.Error(1)
}

func (m *MockCostingRepository) ListFlakesCosts(ctx context.Context, limit int, offset int) ([]domain.FlakesCost, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.FlakesCost](args, 0), args.Error(1)
}

func (m *MockCostingRepository) ListPelletsPrices(ctx context.Context, limit int, offset int) ([]domain.PelletsPrice, error) {
	args := m.Called(ctx, limit, offset)
	return getSlice[domain.PelletsPrice](args, 0), args.Error(1)
}

func (m *MockCostingRepository) SaveFlakesIntake(ctx context.Context, intake domain.FlakesIntake) error {
	return m.Called(ctx, intake).Error(0)
}

func (m *MockCostingRepository) SaveFlakesCost(ctx context.Context, cost domain.FlakesCost) error {
	return m.Called(ctx, cost).Error(0)
}

func (m *MockCostingRepository) SavePelletsPrice(ctx context.Context, price domain.PelletsPrice) error {
	return m.Called(ctx, price).Error(0)
}

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

var _ portsrepo.ExpenseRepositoryWithTx = (*MockExpenseRepository)(nil)

func (m *MockExpenseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	return getTx(args), args.Error(1)
}

func (m *MockExpenseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockExpenseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockExpenseRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.ExpenseCategory, error) {
	args := m.Called(ctx, categoryID)
	return getPtr[domain.ExpenseCategory](args, 0), args.Error(1)
}

func (m *MockExpenseRepository) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx)
	return getSlice[domain.ExpenseCategory](args, 0), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, userID string, limit int, offset int) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, limit, offset)
	return getSlice[domain.Expense](args, 0), args.Error(1)
}

func (m *MockExpenseRepository) SaveCategory(ctx context.Context, category domain.ExpenseCategory) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockExpenseRepository) SaveExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	return m.Called(ctx, tx, expense).Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) CustomerIntakeMetrics(ctx context.Context) ([]domain.IntakeMetrics, error) {
	args := m.Called(ctx)
	return getSlice[domain.IntakeMetrics](args, 0), args.Error(1)
}

func (m *MockReportingRepository) ElectricitySummaries(ctx context.Context) ([]domain.ElectricitySummary, error) {
	args := m.Called(ctx)
	return getSlice[domain.ElectricitySummary](args, 0), args.Error(1)
}

// decEq matches a decimal argument by value rather than representation.
func decEq(want string) any {
	w := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(w) })
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

var fixedNow = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

var assertErr = errors.New("storage unavailable")
