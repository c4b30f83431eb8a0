package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recyclingHandler serves recycling operations and their loss breakdown.
type recyclingHandler struct {
	recyclingService portssvc.RecyclingSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newRecyclingHandler(rs portssvc.RecyclingSvcFacade, rps portssvc.ReportingSvcFacade) *recyclingHandler {
	return &recyclingHandler{
		recyclingService: rs,
		reportingService: rps,
	}
}

func registerRecyclingRoutes(rg *gin.RouterGroup, recyclingService portssvc.RecyclingSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newRecyclingHandler(recyclingService, reportingService)

	operations := rg.Group("/recycling-operations")
	{
		operations.POST("", h.recordOperation)
		operations.GET("", h.listOperations)
		operations.GET("/:id", h.getOperation)
		operations.GET("/:id/loss", h.getOperationLoss)
	}
}

// recordOperation godoc
// @Summary Record a recycling operation
// @Description Derives the operation amount and electricity figures, accrues pay for the assigned staff and adds the amount to the customer's payable, all in one unit of work.
// @Description References that do not resolve are stored as null and their side effects are skipped.
// @Tags recycling
// @Accept json
// @Produce json
// @Param operation body dto.CreateRecyclingOperationRequest true "Operation details"
// @Success 201 {object} domain.RecyclingOutcome
// @Failure 400 {object} dto.ErrorResponse "Missing rate or material used"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to record operation"
// @Security BearerAuth
// @Router /recycling-operations [post]
func (h *recyclingHandler) recordOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecyclingOperationRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	outcome, err := h.recyclingService.RecordOperation(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record operation")
		return
	}

	logger.Info("Recycling operation recorded",
		slog.String("operation_id", outcome.Operation.OperationID),
		slog.Int("accruals", len(outcome.Accruals)),
		slog.Bool("payable_updated", outcome.Payable != nil))
	c.JSON(http.StatusCreated, outcome)
}

// listOperations godoc
// @Summary List recycling operations
// @Description Newest first, paged with an opaque continuation token
// @Tags recycling
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Continuation token from the previous page"
// @Success 200 {object} dto.ListRecyclingOperationsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list operations"
// @Security BearerAuth
// @Router /recycling-operations [get]
func (h *recyclingHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecyclingOperationsParams
	if !bindQuery(c, &params) {
		return
	}

	resp, err := h.recyclingService.ListOperations(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list operations")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getOperation godoc
// @Summary Get a recycling operation
// @Tags recycling
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} domain.RecyclingOperation
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Operation not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve operation"
// @Security BearerAuth
// @Router /recycling-operations/{id} [get]
func (h *recyclingHandler) getOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	op, err := h.recyclingService.GetOperation(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve operation")
		return
	}
	c.JSON(http.StatusOK, op)
}

// getOperationLoss godoc
// @Summary Get the material loss of an operation
// @Description Compares the material used against the quantity of the referenced intake
// @Tags recycling
// @Produce json
// @Param id path string true "Operation ID"
// @Success 200 {object} domain.OperationLoss
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Operation not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to compute loss"
// @Security BearerAuth
// @Router /recycling-operations/{id}/loss [get]
func (h *recyclingHandler) getOperationLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	loss, err := h.reportingService.OperationLoss(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to compute loss")
		return
	}
	c.JSON(http.StatusOK, loss)
}
