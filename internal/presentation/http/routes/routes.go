package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/pharmacy-api/internal/config"
	domainRepo "github.com/sangkips/pharmacy-api/internal/domain/repository"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/handler"
	"github.com/sangkips/pharmacy-api/internal/presentation/http/middleware"
	"github.com/sangkips/pharmacy-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Medicine *handler.MedicineHandler
	Sale     *handler.SaleHandler
	Customer *handler.CustomerHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes. The sale and
// customer endpoints are open for the kiosk; everything that mutates the
// catalog or reads reports sits behind admin auth.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		registerPublicRoutes(v1, h, deps)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		registerAdminRoutes(protected, h)
	}

	return router
}

func registerPublicRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	// Kiosk surface: record sales and look up receipts without a login
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	v1.POST("/sales", idempotency, h.Sale.Create)
	v1.GET("/sales/:id", h.Sale.Get)

	v1.GET("/medicines/sellable", h.Medicine.ListSellable)

	v1.GET("/customers", h.Customer.List)
	v1.POST("/customers", h.Customer.Create)
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	protected.POST("/auth/register", h.Auth.Register)
	protected.GET("/profile", h.Auth.Me)

	medicines := protected.Group("/medicines")
	{
		medicines.GET("", h.Medicine.List)
		medicines.POST("", h.Medicine.Create)
		medicines.GET("/:id", h.Medicine.Get)
		medicines.PUT("/:id", h.Medicine.Update)
		medicines.DELETE("/:id", h.Medicine.Delete)
	}

	protected.GET("/customers/:id", h.Customer.Get)

	reports := protected.Group("/reports")
	{
		reports.GET("", h.Report.Full)
		reports.GET("/overview", h.Report.Overview)
		reports.GET("/best-sellers", h.Report.BestSellers)
		reports.GET("/profit", h.Report.Profit)
	}

	sales := protected.Group("/sales")
	{
		sales.GET("/search", h.Report.Search)
		sales.GET("/export", h.Report.Export)
		sales.GET("/reset/preview", h.Report.PreviewReset)
		sales.POST("/reset", h.Report.ApplyReset)
	}
}
