package handlers

import (
	"net/http"

	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show the status of server.
// @Description Returns a greeting along with the authenticated user.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router / [get]
func getHome(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	c.JSON(http.StatusOK, gin.H{"message": "Hafeez Ventures recycling API v1", "userID": userID})
}

func registerHomeRoutes(group *gin.RouterGroup) {
	group.GET("/", getHome)
}
