package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

// costingHandler serves the flakes to pellets costing chain.
type costingHandler struct {
	costingService portssvc.CostingSvcFacade
}

func newCostingHandler(cs portssvc.CostingSvcFacade) *costingHandler {
	return &costingHandler{costingService: cs}
}

func registerCostingRoutes(rg *gin.RouterGroup, costingService portssvc.CostingSvcFacade) {
	h := newCostingHandler(costingService)

	rg.POST("/flakes-intakes", h.createFlakesIntake)
	rg.GET("/flakes-intakes", h.listFlakesIntakes)
	rg.POST("/flakes-costs", h.createFlakesCost)
	rg.GET("/flakes-costs", h.listFlakesCosts)
	rg.POST("/pellets-prices", h.createPelletsPrice)
	rg.GET("/pellets-prices", h.listPelletsPrices)
}

// createFlakesIntake godoc
// @Summary Record a flakes purchase
// @Description totalCost1 is quantity times unit cost, or null when either is missing
// @Tags costing
// @Accept json
// @Produce json
// @Param intake body dto.CreateFlakesIntakeRequest true "Flakes intake"
// @Success 201 {object} domain.FlakesIntake
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate serial"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to record flakes intake"
// @Security BearerAuth
// @Router /flakes-intakes [post]
func (h *costingHandler) createFlakesIntake(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFlakesIntakeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	intake, err := h.costingService.CreateFlakesIntake(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record flakes intake")
		return
	}

	logger.Info("Flakes intake recorded", slog.String("serial", intake.Serial))
	c.JSON(http.StatusCreated, intake)
}

// listFlakesIntakes godoc
// @Summary List flakes purchases
// @Tags costing
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListFlakesIntakesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list flakes intakes"
// @Security BearerAuth
// @Router /flakes-intakes [get]
func (h *costingHandler) listFlakesIntakes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	intakes, err := h.costingService.ListFlakesIntakes(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list flakes intakes")
		return
	}
	c.JSON(http.StatusOK, dto.ListFlakesIntakesResponse{FlakesIntakes: intakes})
}

// createFlakesCost godoc
// @Summary Record flakes processing costs
// @Description totalCost2 is the sum of the four cost components, or null when any is missing
// @Tags costing
// @Accept json
// @Produce json
// @Param cost body dto.CreateFlakesCostRequest true "Processing costs"
// @Success 201 {object} domain.FlakesCost
// @Failure 400 {object} dto.ErrorResponse "Invalid input or duplicate cost ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to record flakes cost"
// @Security BearerAuth
// @Router /flakes-costs [post]
func (h *costingHandler) createFlakesCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFlakesCostRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	cost, err := h.costingService.CreateFlakesCost(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record flakes cost")
		return
	}

	logger.Info("Flakes cost recorded", slog.String("cost_id", cost.CostID))
	c.JSON(http.StatusCreated, cost)
}

// listFlakesCosts godoc
// @Summary List flakes processing costs
// @Tags costing
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListFlakesCostsResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list flakes costs"
// @Security BearerAuth
// @Router /flakes-costs [get]
func (h *costingHandler) listFlakesCosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	costs, err := h.costingService.ListFlakesCosts(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list flakes costs")
		return
	}
	c.JSON(http.StatusOK, dto.ListFlakesCostsResponse{FlakesCosts: costs})
}

// createPelletsPrice godoc
// @Summary Record a pellets sale price
// @Description profit is price minus both parent totals; null unless both parents resolve
// @Tags costing
// @Accept json
// @Produce json
// @Param price body dto.CreatePelletsPriceRequest true "Pellets price"
// @Success 201 {object} domain.PelletsPrice
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to record pellets price"
// @Security BearerAuth
// @Router /pellets-prices [post]
func (h *costingHandler) createPelletsPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePelletsPriceRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	price, err := h.costingService.CreatePelletsPrice(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record pellets price")
		return
	}

	logger.Info("Pellets price recorded", slog.String("price_id", price.PriceID), slog.Bool("has_profit", price.Profit != nil))
	c.JSON(http.StatusCreated, price)
}

// listPelletsPrices godoc
// @Summary List pellets prices
// @Tags costing
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListPelletsPricesResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list pellets prices"
// @Security BearerAuth
// @Router /pellets-prices [get]
func (h *costingHandler) listPelletsPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	prices, err := h.costingService.ListPelletsPrices(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list pellets prices")
		return
	}
	c.JSON(http.StatusOK, dto.ListPelletsPricesResponse{PelletsPrices: prices})
}
