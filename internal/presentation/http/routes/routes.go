package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/posledger/internal/config"
	"github.com/sangkips/posledger/internal/presentation/http/dto/response"
	"github.com/sangkips/posledger/internal/presentation/http/handler"
	"github.com/sangkips/posledger/internal/presentation/http/middleware"
	"github.com/sangkips/posledger/pkg/apperror"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Transaction *handler.TransactionHandler
	Product     *handler.ProductHandler
	Cashier     *handler.CashierHandler
	Printer     *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg         *config.Config
	RateLimiter *middleware.ClientRateLimiter
}

// NewRateLimiter builds the per-client limiter from the configured
// requests-per-duration budget.
func NewRateLimiter(cfg *config.RateLimitConfig) *middleware.ClientRateLimiter {
	duration := cfg.Duration
	if duration <= 0 {
		duration = 60
	}
	return middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.Requests) / float64(duration),
		BurstSize:         cfg.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.NoMethod(func(c *gin.Context) {
		response.Error(c, apperror.ErrMethodNotAllowed)
	})
	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})

	router.GET("/health", health)

	api := router.Group("/api")
	if deps.RateLimiter != nil {
		api.Use(deps.RateLimiter.Middleware())
	}
	{
		api.GET("/health", health)

		api.POST("/transactions", h.Transaction.Register)
		api.GET("/receipt", h.Transaction.GetReceipt)

		api.GET("/products", h.Product.GetByCode)
		api.GET("/cashiers", h.Cashier.List)

		registerPrinterRoutes(api, h)
	}

	return router
}

func registerPrinterRoutes(api *gin.RouterGroup, h *Handlers) {
	if h.Printer == nil {
		return
	}
	api.POST("/receipt/print", h.Printer.PrintReceipt)
	api.GET("/printer/status", h.Printer.GetStatus)
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
