package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

type payableHandler struct {
	payableService portssvc.PayableSvcFacade
}

func newPayableHandler(ps portssvc.PayableSvcFacade) *payableHandler {
	return &payableHandler{payableService: ps}
}

func registerPayableRoutes(rg *gin.RouterGroup, payableService portssvc.PayableSvcFacade) {
	h := newPayableHandler(payableService)

	rg.POST("/payments", h.recordPayment)

	payables := rg.Group("/payables")
	{
		payables.GET("", h.listPayables)
		payables.GET("/:customerID", h.getPayable)
		payables.GET("/:customerID/payments", h.listPayments)
	}
}

// recordPayment godoc
// @Summary Record a customer payment
// @Description Reduces the customer's payable by the paid amount
// @Tags payables
// @Accept json
// @Produce json
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.CreatePaymentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or unknown customer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to record payment"
// @Security BearerAuth
// @Router /payments [post]
func (h *payableHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	payment, payable, err := h.payableService.RecordPayment(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record payment")
		return
	}

	logger.Info("Customer payment recorded", slog.String("payment_id", payment.PaymentID), slog.String("customer_id", payment.CustomerID))
	c.JSON(http.StatusCreated, dto.CreatePaymentResponse{Payment: *payment, Payable: *payable})
}

// listPayables godoc
// @Summary List account payables
// @Tags payables
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListPayablesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list payables"
// @Security BearerAuth
// @Router /payables [get]
func (h *payableHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	payables, err := h.payableService.ListPayables(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list payables")
		return
	}
	c.JSON(http.StatusOK, dto.ListPayablesResponse{Payables: payables})
}

// getPayable godoc
// @Summary Get a customer's payable
// @Tags payables
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {object} domain.AccountPayable
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Payable not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve payable"
// @Security BearerAuth
// @Router /payables/{customerID} [get]
func (h *payableHandler) getPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payable, err := h.payableService.GetPayable(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payable")
		return
	}
	c.JSON(http.StatusOK, payable)
}

// listPayments godoc
// @Summary List a customer's payments
// @Tags payables
// @Produce json
// @Param customerID path string true "Customer ID"
// @Success 200 {array} domain.CustomerPayment
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list payments"
// @Security BearerAuth
// @Router /payables/{customerID}/payments [get]
func (h *payableHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payments, err := h.payableService.ListPayments(c.Request.Context(), c.Param("customerID"))
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, payments)
}
