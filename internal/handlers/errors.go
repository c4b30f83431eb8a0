package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/abdulhafizu/HafeezVentures2/internal/middleware"
	"github.com/gin-gonic/gin"
)

// errorStatus maps a service error to an HTTP status and response body.
// Unclassified errors are reported with the fallback message only.
func errorStatus(err error, fallback string) (int, dto.ErrorResponse) {
	if fe, ok := apperrors.AsFieldError(err); ok {
		return http.StatusBadRequest, dto.ErrorResponse{Error: fe.Error(), Field: fe.Field}
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code, dto.ErrorResponse{Error: appErr.Message}
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrConfigurationAbsent):
		return http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{Error: fallback}
}

// respondError writes the mapped error response. Server-side failures are
// logged at error level, client mistakes at warn.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, body := errorStatus(err, fallback)
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		logger.Error(fallback, slog.String("error", err.Error()))
	} else {
		logger.Warn(fallback, slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, body)
}

// currentUserID reads the authenticated user, answering 401 when absent.
func currentUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return userID, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return false
	}
	return true
}
