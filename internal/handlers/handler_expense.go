package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

type expenseHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseService: es}
}

func registerExpenseRoutes(rg *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseService)

	categories := rg.Group("/expense-categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("", h.listCategories)
	}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
	}
}

// createCategory godoc
// @Summary Create an expense category
// @Tags expenses
// @Accept json
// @Produce json
// @Param category body dto.CreateExpenseCategoryRequest true "Category details"
// @Success 201 {object} domain.ExpenseCategory
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate name"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create category"
// @Security BearerAuth
// @Router /expense-categories [post]
func (h *expenseHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseCategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	category, err := h.expenseService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create category")
		return
	}
	c.JSON(http.StatusCreated, category)
}

// listCategories godoc
// @Summary List expense categories
// @Tags expenses
// @Produce json
// @Success 200 {object} dto.ListExpenseCategoriesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list categories"
// @Security BearerAuth
// @Router /expense-categories [get]
func (h *expenseHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.expenseService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ListExpenseCategoriesResponse{Categories: categories})
}

// createExpense godoc
// @Summary Record an expense
// @Description Debits the ledger and records an unapproved expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.CreateExpenseResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown category"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Insufficient balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to record expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	expense, txn, err := h.expenseService.CreateExpense(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record expense")
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.CreateExpenseResponse{
		Expense:     *expense,
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// listExpenses godoc
// @Summary List my expenses
// @Description Only expenses created by the caller are returned
// @Tags expenses
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ListExpensesResponse{Expenses: expenses})
}
