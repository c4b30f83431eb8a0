package handlers

import (
	"log/slog"
	"net/http"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

// partyHandler serves customers and staff members.
type partyHandler struct {
	partyService portssvc.PartySvcFacade
}

func newPartyHandler(ps portssvc.PartySvcFacade) *partyHandler {
	return &partyHandler{partyService: ps}
}

func registerPartyRoutes(rg *gin.RouterGroup, partyService portssvc.PartySvcFacade) {
	h := newPartyHandler(partyService)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
		customers.GET("/:id", h.getCustomer)
	}

	staff := rg.Group("/staff")
	{
		staff.POST("", h.createStaff)
		staff.GET("", h.listStaff)
		staff.GET("/:id", h.getStaff)
	}
}

// createCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body dto.CreateCustomerRequest true "Customer details"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create customer"
// @Security BearerAuth
// @Router /customers [post]
func (h *partyHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	customer, err := h.partyService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create customer")
		return
	}

	logger.Info("Customer created", slog.String("customer_id", customer.CustomerID))
	c.JSON(http.StatusCreated, customer)
}

// listCustomers godoc
// @Summary List customers
// @Tags customers
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list customers"
// @Security BearerAuth
// @Router /customers [get]
func (h *partyHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	customers, err := h.partyService.ListCustomers(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ListCustomersResponse{Customers: customers})
}

// getCustomer godoc
// @Summary Get a customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} domain.Customer
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve customer"
// @Security BearerAuth
// @Router /customers/{id} [get]
func (h *partyHandler) getCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	customer, err := h.partyService.GetCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// createStaff godoc
// @Summary Create a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body dto.CreateStaffRequest true "Staff details"
// @Success 201 {object} domain.StaffMember
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to create staff member"
// @Security BearerAuth
// @Router /staff [post]
func (h *partyHandler) createStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	member, err := h.partyService.CreateStaff(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create staff member")
		return
	}

	logger.Info("Staff member created", slog.String("staff_id", member.StaffID), slog.String("role", string(member.Role)))
	c.JSON(http.StatusCreated, member)
}

// listStaff godoc
// @Summary List staff members
// @Tags staff
// @Produce json
// @Param role query string false "Filter by role" Enums(manager, operator, packer)
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListStaffResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list staff"
// @Security BearerAuth
// @Router /staff [get]
func (h *partyHandler) listStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListParams
	if !bindQuery(c, &params) {
		return
	}

	var role *domain.StaffRole
	if raw := c.Query("role"); raw != "" {
		r := domain.StaffRole(raw)
		role = &r
	}

	staff, err := h.partyService.ListStaff(c.Request.Context(), role, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list staff")
		return
	}
	c.JSON(http.StatusOK, dto.ListStaffResponse{Staff: staff})
}

// getStaff godoc
// @Summary Get a staff member
// @Tags staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} domain.StaffMember
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Staff member not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve staff member"
// @Security BearerAuth
// @Router /staff/{id} [get]
func (h *partyHandler) getStaff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	member, err := h.partyService.GetStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve staff member")
		return
	}
	c.JSON(http.StatusOK, member)
}
