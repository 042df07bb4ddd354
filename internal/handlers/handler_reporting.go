package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/dto"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	clock            clock.Clock
}

// registerReportingRoutes registers the report generation routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, clk clock.Clock) {
	h := &reportingHandler{reportingService: reportingService, clock: clk}

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/income-statement", h.incomeStatement)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/cash-flow-statement", h.cashFlowStatement)
	}
}

// asOfParam reads the asOf query parameter, defaulting to today.
func (h *reportingHandler) asOfParam(c *gin.Context) (time.Time, bool) {
	raw := c.Query("asOf")
	if raw == "" {
		return h.clock.Now(), true
	}
	parsed, err := parseDateParam(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return parsed, true
}

// periodParams reads the from and to query parameters. The period defaults
// to the current calendar year through today.
func (h *reportingHandler) periodParams(c *gin.Context) (time.Time, time.Time, bool) {
	now := h.clock.Now()
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := parseDateParam(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date, expected YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}

// trialBalance renders every non-zero net balance as of a date.
func (h *reportingHandler) trialBalance(c *gin.Context) {
	asOf, ok := h.asOfParam(c)
	if !ok {
		return
	}
	report, err := h.reportingService.TrialBalance(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// incomeStatement renders period income and expenses by statement section.
func (h *reportingHandler) incomeStatement(c *gin.Context) {
	from, to, ok := h.periodParams(c)
	if !ok {
		return
	}
	report, err := h.reportingService.IncomeStatement(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(report))
}

// balanceSheet renders the point-in-time statement of financial position.
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	asOf, ok := h.asOfParam(c)
	if !ok {
		return
	}
	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondError(c, err, "Failed to generate balance sheet")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// cashFlowStatement renders period cash movements by activity.
func (h *reportingHandler) cashFlowStatement(c *gin.Context) {
	from, to, ok := h.periodParams(c)
	if !ok {
		return
	}
	report, err := h.reportingService.CashFlowStatement(c.Request.Context(), from, to)
	if err != nil {
		respondError(c, err, "Failed to generate cash flow statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashFlowResponse(report))
}
