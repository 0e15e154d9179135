// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups every HTTP controller the router mounts.
type Controllers struct {
	Health      *controller.HealthController
	Auth        *controller.AuthController
	Transaction *controller.TransactionController
	Wallet      *controller.WalletController
	Budget      *controller.BudgetController
	Dashboard   *controller.DashboardController
	Savings     *controller.SavingsController
	Debt        *controller.DebtController
	Recurring   *controller.RecurringController
	Report      *controller.ReportController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	controllers      Controllers
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:      controllers,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	// Default adds the logger and recovery middleware.
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.controllers.Health.Check)
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), c.Auth.Login)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())

	transactions := protected.Group("/transactions")
	{
		transactions.GET("", c.Transaction.List)
		transactions.POST("", c.Transaction.Create)
		transactions.DELETE("/:id", c.Transaction.Delete)
	}

	wallets := protected.Group("/wallets")
	{
		wallets.GET("", c.Wallet.Balances)
		wallets.POST("/transfer", c.Wallet.Transfer)
		wallets.POST("/:wallet/adjust", c.Wallet.Adjust)
	}

	budgets := protected.Group("/budgets")
	{
		budgets.GET("", c.Budget.List)
		budgets.POST("", c.Budget.Upsert)
	}

	protected.GET("/dashboard/stats", c.Dashboard.Stats)
	protected.GET("/insights", c.Dashboard.Insights)

	jars := protected.Group("/savings")
	{
		jars.GET("", c.Savings.List)
		jars.POST("", c.Savings.Create)
		jars.PATCH("/:id/transfer", c.Savings.Transfer)
		jars.DELETE("/:id", c.Savings.Delete)
	}

	debts := protected.Group("/debts")
	{
		debts.GET("", c.Debt.List)
		debts.POST("", c.Debt.Create)
		debts.POST("/batch", c.Debt.BatchCreate)
		debts.POST("/split", c.Debt.Split)
		debts.PATCH("/:id/settle", c.Debt.Settle)
		debts.DELETE("/:id", c.Debt.Delete)
	}

	recurring := protected.Group("/recurring")
	{
		recurring.GET("", c.Recurring.List)
		recurring.POST("", c.Recurring.Create)
		recurring.DELETE("/:id", c.Recurring.Delete)
	}

	protected.GET("/reports/transactions.csv", c.Report.ExportTransactions)
}
