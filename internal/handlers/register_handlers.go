package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/quantilytix/qbeta-backend/internal/core/ports/services"
	"github.com/quantilytix/qbeta-backend/internal/middleware"
	"github.com/quantilytix/qbeta-backend/internal/platform/config"
	"github.com/quantilytix/qbeta-backend/internal/utils/clock"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	clk clock.Clock,
) {
	registerHomeRoutes(r)

	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, services.Account, clk)
	registerTransactionRoutes(v1, services.Transaction)
	registerAssetRoutes(v1, services.Asset)
	registerDepreciationRoutes(v1, services.Depreciation, depreciationRateLimit(cfg))
	registerReportingRoutes(v1, services.Reporting, clk)
}

// depreciationRateLimit builds the rate limit middleware for the
// depreciation run endpoint. The run writes ledger rows for every eligible
// asset, so it gets a tighter limit than the rest of the API.
func depreciationRateLimit(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.DepreciationRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}
