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

type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryWithTx
	ledgerRepo  portsrepo.LedgerTransactionSupport
	handle      domain.LedgerHandle
}

func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepositoryWithTx,
	ledgerRepo portsrepo.LedgerTransactionSupport,
	handle domain.LedgerHandle,
	options ...ServiceOption,
) portssvc.ExpenseSvcFacade {
	svc := &expenseService{
		BaseService: newBaseService(),
		expenseRepo: expenseRepo,
		ledgerRepo:  ledgerRepo,
		handle:      handle,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateCategory(ctx context.Context, req dto.CreateExpenseCategoryRequest, userID string) (*domain.ExpenseCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewFieldError("name", "is required")
	}
	category := domain.ExpenseCategory{
		CategoryID:  uuid.NewString(),
		Name:        name,
		Description: req.Description,
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.expenseRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, duplicateFieldError("name", name)
		}
		s.LogError(ctx, err, "Failed to save expense category", slog.String("name", name))
		return nil, err
	}
	return &category, nil
}

func (s *expenseService) ListCategories(ctx context.Context) ([]domain.ExpenseCategory, error) {
	return s.expenseRepo.ListCategories(ctx)
}

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, userID string) (*domain.Expense, *domain.Transaction, error) {
	if req.Amount == nil || !req.Amount.IsPositive() {
		return nil, nil, apperrors.NewFieldError("amount", "must be greater than zero")
	}
	category, err := s.expenseRepo.FindCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewFieldError("categoryID", "expense category does not exist")
		}
		return nil, nil, err
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = category.Name
	}

	now := s.now()
	tx, err := s.expenseRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, nil, err
	}
	defer func() { _ = s.expenseRepo.Rollback(ctx, tx) }()

	txn, _, err := postToLedgerInTx(ctx, tx, s.ledgerRepo, s.handle, domain.Debit, *req.Amount, description, userID, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to debit ledger for expense", slog.String("category_id", category.CategoryID))
		return nil, nil, err
	}

	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		CategoryID:    category.CategoryID,
		Amount:        *req.Amount,
		Description:   description,
		Date:          dateOrNow(req.Date, now),
		Approved:      false,
		TransactionID: txn.TransactionID,
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if err := s.expenseRepo.SaveExpenseInTx(ctx, tx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_id", expense.ExpenseID))
		return nil, nil, err
	}

	if err := s.expenseRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit expense", slog.String("expense_id", expense.ExpenseID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("expense_id", expense.ExpenseID),
		slog.String("amount", expense.Amount.String()))
	return &expense, txn, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string, params dto.ListParams) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, userID, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses", slog.String("user_id", userID))
		return nil, err
	}
	return expenses, nil
}
