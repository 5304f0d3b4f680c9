package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
	"github.com/banking-ms/account-movement-service/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService  portssvc.AccountSvcFacade
	movementService portssvc.MovementSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade, ms portssvc.MovementSvcFacade) *accountHandler {
	return &accountHandler{accountService: as, movementService: ms}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, as portssvc.AccountSvcFacade, ms portssvc.MovementSvcFacade) {
	h := newAccountHandler(as, ms)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/balance", h.getBalance)
		accounts.GET("/:accountID/movements", h.listAccountMovements)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// getAccount godoc
// @Summary Get an account by ID
// @Tags accounts
// @Produce json
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts, optionally filtered by owning client or number
// @Tags accounts
// @Produce json
// @Param clientID query int false "Filter by owning client"
// @Param number query string false "Look up a single account by number"
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	ctx := c.Request.Context()

	if number := c.Query("number"); number != "" {
		account, err := h.accountService.GetAccountByNumber(ctx, number)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, []dto.AccountResponse{dto.ToAccountResponse(account)})
		return
	}

	if clientIDStr := c.Query("clientID"); clientIDStr != "" {
		clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "clientID must be an integer"})
			return
		}
		accounts, err := h.accountService.ListAccountsByClientID(ctx, clientID)
		if err != nil {
			respondWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToAccountResponseSlice(accounts))
		return
	}

	accounts, err := h.accountService.ListAccounts(ctx)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponseSlice(accounts))
}

// getBalance godoc
// @Summary Get the current balance of an account
// @Tags accounts
// @Produce json
// @Param accountID path int true "Account ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} map[string]string
// @Router /accounts/{accountID}/balance [get]
func (h *accountHandler) getBalance(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	balance, err := h.movementService.CurrentBalance(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{AccountID: accountID, Balance: balance})
}

// listAccountMovements godoc
// @Summary List an account's movements, most recent first
// @Tags accounts
// @Produce json
// @Param accountID path int true "Account ID"
// @Success 200 {array} dto.MovementResponse
// @Failure 404 {object} map[string]string
// @Router /accounts/{accountID}/movements [get]
func (h *accountHandler) listAccountMovements(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	movements, err := h.movementService.ListMovementsByAccountID(c.Request.Context(), accountID)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponseSlice(movements))
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param accountID path int true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} map[string]string
// @Router /accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind account update request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deleteAccount godoc
// @Summary Delete an account
// @Tags accounts
// @Param accountID path int true "Account ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /accounts/{accountID} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	accountID, ok := parseIDParam(c, "accountID")
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// parseIDParam parses a numeric path parameter, writing a 400 response when
// it is not an integer.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return id, true
}
