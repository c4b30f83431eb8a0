package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

type intakeHandler struct {
	intakeService portssvc.IntakeSvcFacade
}

func newIntakeHandler(is portssvc.IntakeSvcFacade) *intakeHandler {
	return &intakeHandler{intakeService: is}
}

func registerIntakeRoutes(rg *gin.RouterGroup, intakeService portssvc.IntakeSvcFacade) {
	h := newIntakeHandler(intakeService)

	intakes := rg.Group("/intakes")
	{
		intakes.POST("", h.createIntake)
		intakes.GET("", h.listIntakes)
		intakes.GET("/:id", h.getIntake)
	}
}

// createIntake godoc
// @Summary Record a material intake
// @Description Records a batch of material received from a customer. Serials are unique.
// @Tags intakes
// @Accept json
// @Produce json
// @Param intake body dto.CreateIntakeRequest true "Intake details"
// @Success 201 {object} domain.MaterialIntake
// @Failure 400 {object} dto.ErrorResponse "Invalid input, duplicate serial or unknown customer"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to record intake"
// @Security BearerAuth
// @Router /intakes [post]
func (h *intakeHandler) createIntake(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIntakeRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	intake, err := h.intakeService.CreateIntake(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to record intake")
		return
	}

	logger.Info("Material intake recorded", slog.String("intake_id", intake.IntakeID), slog.String("serial", intake.Serial))
	c.JSON(http.StatusCreated, intake)
}

// listIntakes godoc
// @Summary List material intakes
// @Tags intakes
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListIntakesResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list intakes"
// @Security BearerAuth
// @Router /intakes [get]
func (h *intakeHandler) listIntakes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	intakes, err := h.intakeService.ListIntakes(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list intakes")
		return
	}
	c.JSON(http.StatusOK, dto.ListIntakesResponse{Intakes: intakes})
}

// getIntake godoc
// @Summary Get a material intake
// @Tags intakes
// @Produce json
// @Param id path string true "Intake ID"
// @Success 200 {object} domain.MaterialIntake
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Intake not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve intake"
// @Security BearerAuth
// @Router /intakes/{id} [get]
func (h *intakeHandler) getIntake(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	intake, err := h.intakeService.GetIntake(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve intake")
		return
	}
	c.JSON(http.StatusOK, intake)
}
