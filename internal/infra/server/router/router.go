// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/lite-finance/backend/internal/integration/entrypoint/controller"
	"github.com/lite-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	meController          *controller.MeController
	categoryController    *controller.CategoryController
	accountController     *controller.AccountController
	transactionController *controller.TransactionController
	summaryController     *controller.SummaryController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	meController *controller.MeController,
	categoryController *controller.CategoryController,
	accountController *controller.AccountController,
	transactionController *controller.TransactionController,
	summaryController *controller.SummaryController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		meController:          meController,
		categoryController:    categoryController,
		accountController:     accountController,
		transactionController: transactionController,
		summaryController:     summaryController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints. Health stays outside
// the rate limited group so probes never get throttled.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		// Identity route (requires authentication)
		if r.meController != nil && r.authMiddleware != nil {
			me := v1.Group("/me")
			me.Use(r.authMiddleware.Authenticate())
			{
				me.GET("", r.meController.Get)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categorias")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/contas")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transacoes")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
			}
		}

		// Reporting routes (require authentication)
		if r.summaryController != nil && r.authMiddleware != nil {
			summaries := v1.Group("/resumos")
			summaries.Use(r.authMiddleware.Authenticate())
			{
				summaries.GET("/mensal", r.summaryController.Monthly)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
