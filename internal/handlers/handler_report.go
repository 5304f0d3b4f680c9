package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/banking-ms/account-movement-service/internal/core/ports/services"
	"github.com/banking-ms/account-movement-service/internal/dto"
)

// reportHandler handles HTTP requests for statement reports.
type reportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportHandler(rs portssvc.ReportingSvcFacade) *reportHandler {
	return &reportHandler{reportingService: rs}
}

// registerReportRoutes registers the report routes.
func registerReportRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newReportHandler(rs)
	rg.GET("/reports", h.accountStatement)
}

// accountStatement godoc
// @Summary Generate an account statement report for a client and date range
// @Tags reports
// @Produce json
// @Param clientID query int true "Client ID"
// @Param from query string true "Range start (RFC 3339)"
// @Param to query string true "Range end (RFC 3339)"
// @Success 200 {array} dto.StatementLineResponse
// @Failure 400 {object} map[string]string
// @Router /reports [get]
func (h *reportHandler) accountStatement(c *gin.Context) {
	var params dto.StatementParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report parameters: " + err.Error()})
		return
	}

	lines, err := h.reportingService.AccountStatement(c.Request.Context(), params.ClientID, params.From, params.To)
	if err != nil {
		respondWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatementLineResponseSlice(lines))
}
