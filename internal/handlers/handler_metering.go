package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

type meteringHandler struct {
	meteringService portssvc.MeteringSvcFacade
}

func newMeteringHandler(ms portssvc.MeteringSvcFacade) *meteringHandler {
	return &meteringHandler{meteringService: ms}
}

func registerMeteringRoutes(rg *gin.RouterGroup, meteringService portssvc.MeteringSvcFacade) {
	h := newMeteringHandler(meteringService)

	readings := rg.Group("/meter-readings")
	{
		readings.POST("", h.recordReading)
		readings.GET("", h.listReadings)
		readings.GET("/:id", h.getReading)
	}

	configuration := rg.Group("/electricity-configuration")
	{
		configuration.GET("", h.getConfiguration)
		configuration.PUT("", h.updateConfiguration)
	}
}

// recordReading godoc
// @Summary Record a meter reading
// @Description Appends a reading and derives consumption from the previous one and cost from the configured unit price
// @Tags metering
// @Accept json
// @Produce json
// @Param reading body dto.RecordMeterReadingRequest true "Reading details"
// @Success 201 {object} domain.MeterReading
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Electricity configuration not set up"
// @Failure 500 {object} dto.ErrorResponse "Failed to record reading"
// @Security BearerAuth
// @Router /meter-readings [post]
func (h *meteringHandler) recordReading(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordMeterReadingRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reading, err := h.meteringService.RecordReading(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record reading")
		return
	}

	logger.Info("Meter reading recorded", slog.String("reading_id", reading.ReadingID))
	c.JSON(http.StatusCreated, reading)
}

// listReadings godoc
// @Summary List meter readings
// @Tags metering
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListMeterReadingsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list readings"
// @Security BearerAuth
// @Router /meter-readings [get]
func (h *meteringHandler) listReadings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	readings, err := h.meteringService.ListReadings(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list readings")
		return
	}
	c.JSON(http.StatusOK, dto.ListMeterReadingsResponse{Readings: readings})
}

// getReading godoc
// @Summary Get a meter reading
// @Tags metering
// @Produce json
// @Param id path string true "Reading ID"
// @Success 200 {object} domain.MeterReading
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Reading not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve reading"
// @Security BearerAuth
// @Router /meter-readings/{id} [get]
func (h *meteringHandler) getReading(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reading, err := h.meteringService.GetReading(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve reading")
		return
	}
	c.JSON(http.StatusOK, reading)
}

// getConfiguration godoc
// @Summary Get the electricity configuration
// @Tags metering
// @Produce json
// @Success 200 {object} domain.ElectricityConfiguration
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 503 {object} dto.ErrorResponse "Electricity configuration not set up"
// @Security BearerAuth
// @Router /electricity-configuration [get]
func (h *meteringHandler) getConfiguration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cfg, err := h.meteringService.GetConfiguration(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve electricity configuration")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// updateConfiguration godoc
// @Summary Update the electricity configuration
// @Description Creates the configuration on first use. Omitted fields keep their stored values.
// @Tags metering
// @Accept json
// @Produce json
// @Param configuration body dto.UpdateElectricityConfigurationRequest true "Configuration values"
// @Success 200 {object} domain.ElectricityConfiguration
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to update configuration"
// @Security BearerAuth
// @Router /electricity-configuration [put]
func (h *meteringHandler) updateConfiguration(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateElectricityConfigurationRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cfg, err := h.meteringService.UpdateConfiguration(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update configuration")
		return
	}
	c.JSON(http.StatusOK, cfg)
}
