package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
	"github.com/banking-ms/account-movement-service/internal/middleware"
)

// movementHandler handles HTTP requests related to movements.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: ms}
}

// registerMovementRoutes registers routes related to movements.
func registerMovementRoutes(rg *gin.RouterGroup, ms portssvc.MovementSvcFacade) {
	h := newMovementHandler(ms)

	movements := rg.Group("/movements")
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
	}
}

// createMovement godoc
// @Summary Post a deposit or withdrawal against an account
// @Description Appends an immutable movement stamped with the resulting balance.
// @Tags movements
// @Accept json
// @Produce json
// @Param movement body dto.CreateMovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} map[string]string "Invalid amount or kind, inactive account, or insufficient balance"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /movements [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind movement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	movement, err := h.movementService.PostMovement(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements, optionally filtered by client and date range
// @Tags movements
// @Produce json
// @Param clientID query int false "Filter by owning client"
// @Param from query string false "Range start (RFC 3339), requires clientID"
// @Param to query string false "Range end (RFC 3339), requires clientID"
// @Success 200 {array} dto.MovementResponse
// @Router /movements [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	ctx := c.Request.Context()

	clientIDStr := c.Query("clientID")
	if clientIDStr == "" {
		movements, err := h.movementService.ListMovements(ctx)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToMovementResponseSlice(movements))
		return
	}

	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientID must be an integer"})
		return
	}

	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	movements, err := h.movementService.ListMovementsByClientAndRange(ctx, clientID, from, to)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponseSlice(movements))
}

// parseRangeParams reads the from/to query parameters, defaulting to an
// unbounded range when omitted.
func parseRangeParams(c *gin.Context) (time.Time, time.Time, bool) {
	from := time.Time{}
	to := time.Now().UTC()

	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC 3339 timestamp"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if toStr := c.Query("to"); toStr != "" {
		parsed, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "to must be an RFC 3339 timestamp"})
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}
