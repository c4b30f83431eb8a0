package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payrollHandler struct {
	payrollService portssvc.PayrollSvcFacade
}

func newPayrollHandler(ps portssvc.PayrollSvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps}
}

func registerPayrollRoutes(rg *gin.RouterGroup, payrollService portssvc.PayrollSvcFacade) {
	h := newPayrollHandler(payrollService)

	rg.POST("/salary-payments", h.paySalary)
	rg.GET("/salary-payments", h.listSalaryPayments)

	payroll := rg.Group("/payroll")
	{
		payroll.GET("/accruals", h.listAccruals)
		payroll.GET("/summary", h.summary)
	}
}

// paySalary godoc
// @Summary Pay a staff member
// @Description Debits the ledger, records the payment and reduces the staff member's accrual
// @Tags payroll
// @Accept json
// @Produce json
// @Param payment body dto.PaySalaryRequest true "Payment details"
// @Success 201 {object} dto.PaySalaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown staff member"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 422 {object} dto.ErrorResponse "Insufficient balance"
// @Failure 500 {object} dto.ErrorResponse "Failed to pay salary"
// @Security BearerAuth
// @Router /salary-payments [post]
func (h *payrollHandler) paySalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PaySalaryRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resp, err := h.payrollService.PaySalary(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to pay salary")
		return
	}

	logger.Info("Salary paid", slog.String("payment_id", resp.Payment.PaymentID), slog.String("staff_id", resp.Payment.StaffID))
	c.JSON(http.StatusCreated, resp)
}

// listSalaryPayments godoc
// @Summary List salary payments
// @Tags payroll
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} domain.SalaryPayment
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list salary payments"
// @Security BearerAuth
// @Router /salary-payments [get]
func (h *payrollHandler) listSalaryPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	payments, err := h.payrollService.ListSalaryPayments(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list salary payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}

// listAccruals godoc
// @Summary List payroll accruals
// @Description Outstanding accrued pay per staff member
// @Tags payroll
// @Produce json
// @Success 200 {object} dto.ListAccrualsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list accruals"
// @Security BearerAuth
// @Router /payroll/accruals [get]
func (h *payrollHandler) listAccruals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accruals, err := h.payrollService.ListAccruals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accruals")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccrualsResponse{Accruals: accruals})
}

// summary godoc
// @Summary Salary summary by role
// @Tags payroll
// @Produce json
// @Success 200 {object} dto.SalarySummaryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to build salary summary"
// @Security BearerAuth
// @Router /payroll/summary [get]
func (h *payrollHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	roles, err := h.payrollService.SalarySummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build salary summary")
		return
	}
	c.JSON(http.StatusOK, dto.SalarySummaryResponse{Roles: roles})
}
