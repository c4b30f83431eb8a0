package handlers

import (
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/customer-metrics", h.customerMetrics)
		reports.GET("/electricity", h.electricitySummary)
	}
}

// customerMetrics godoc
// @Summary Material consumption per intake
// @Description Aggregates material used and lost across the operations of every intake
// @Tags reports
// @Produce json
// @Success 200 {object} dto.CustomerMetricsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to build customer metrics"
// @Security BearerAuth
// @Router /reports/customer-metrics [get]
func (h *reportingHandler) customerMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	metrics, err := h.reportingService.CustomerMetrics(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build customer metrics")
		return
	}
	c.JSON(http.StatusOK, dto.CustomerMetricsResponse{Intakes: metrics})
}

// electricitySummary godoc
// @Summary Electricity usage per meter reading
// @Description Standard cost billed to operations against the metered cost of each reading
// @Tags reports
// @Produce json
// @Success 200 {object} dto.ElectricitySummaryResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to build electricity summary"
// @Security BearerAuth
// @Router /reports/electricity [get]
func (h *reportingHandler) electricitySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.reportingService.ElectricitySummary(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build electricity summary")
		return
	}
	c.JSON(http.StatusOK, dto.ElectricitySummaryResponse{Summaries: summaries})
}
