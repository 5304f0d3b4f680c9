package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/banking-ms/account-movement-service/internal/apperrors"
	"github.com/banking-ms/account-movement-service/internal/core/services"
	"github.com/banking-ms/account-movement-service/internal/middleware"
)

// respondWithServiceError maps service errors to HTTP statuses. Every
// validation-family error is caller-correctable and maps to 400; internal
// failures never leak their details to the client.
func respondWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAccountInactive),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidMovementKind),
		errors.Is(err, services.ErrInsufficientBalance),
		errors.Is(err, services.ErrNegativeInitialBalance),
		errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateNumber),
		errors.Is(err, services.ErrDuplicateIdentification),
		errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
