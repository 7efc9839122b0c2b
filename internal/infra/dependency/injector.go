// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lite-finance/backend/config"
	"github.com/lite-finance/backend/internal/application/usecase/account"
	"github.com/lite-finance/backend/internal/application/usecase/category"
	"github.com/lite-finance/backend/internal/application/usecase/summary"
	"github.com/lite-finance/backend/internal/application/usecase/transaction"
	"github.com/lite-finance/backend/internal/infra/server/router"
	"github.com/lite-finance/backend/internal/integration/adapters"
	"github.com/lite-finance/backend/internal/integration/entrypoint/controller"
	"github.com/lite-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/lite-finance/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case rate limiting is disabled.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	categoryRepo := persistence.NewCategoryRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)

	// Create account use cases
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, accountRepo)

	// Create summary use cases
	monthlySummaryUseCase := summary.NewMonthlySummaryUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})
	meController := controller.NewMeController()
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase)
	accountController := controller.NewAccountController(listAccountsUseCase, createAccountUseCase)
	transactionController := controller.NewTransactionController(listTransactionsUseCase, createTransactionUseCase)
	summaryController := controller.NewSummaryController(monthlySummaryUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
			rateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
		} else {
			rateLimiter = middleware.NewRateLimiterWithConfig(redisClient, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowDuration)
		}
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService, devFakeUserID(cfg))

	// Create router
	r := router.NewRouter(
		healthController,
		meController,
		categoryController,
		accountController,
		transactionController,
		summaryController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}

// devFakeUserID resolves the development auth bypass user. It is never
// honored in production, no matter what the environment says.
func devFakeUserID(cfg *config.Config) uuid.UUID {
	if cfg.Auth.DevFakeUserID == "" || cfg.Server.Environment == "production" {
		return uuid.Nil
	}
	id, err := uuid.Parse(cfg.Auth.DevFakeUserID)
	if err != nil {
		slog.Warn("Ignoring malformed DEV_FAKE_USER_ID", "error", err)
		return uuid.Nil
	}
	return id
}
