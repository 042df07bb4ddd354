package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/dto"
	"github.com/quantilytix/qbeta-backend/internal/middleware"
)

// depreciationHandler handles HTTP requests that trigger depreciation runs.
type depreciationHandler struct {
	depreciationService portssvc.DepreciationService
}

// registerDepreciationRoutes registers the depreciation run route. The run
// mutates ledger state, so callers should apply a rate limit middleware.
func registerDepreciationRoutes(rg *gin.RouterGroup, depreciationService portssvc.DepreciationService, mws ...gin.HandlerFunc) {
	h := &depreciationHandler{depreciationService: depreciationService}

	depreciation := rg.Group("/depreciation", mws...)
	{
		depreciation.POST("/run", h.runDepreciation)
	}
}

// runDepreciation advances every eligible asset to the requested date and
// records the generated expense transactions.
func (h *depreciationHandler) runDepreciation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RunDepreciationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for runDepreciation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asOf, err := parseDateParam(req.AsOfDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOfDate, expected YYYY-MM-DD"})
		return
	}

	result, err := h.depreciationService.Run(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to run depreciation")
		return
	}

	c.JSON(http.StatusOK, dto.ToDepreciationRunResponse(result))
}
