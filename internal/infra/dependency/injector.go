// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/pocket-ledger/backend/config"
	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/application/usecase/auth"
	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	"github.com/pocket-ledger/backend/internal/application/usecase/dashboard"
	"github.com/pocket-ledger/backend/internal/application/usecase/debt"
	"github.com/pocket-ledger/backend/internal/application/usecase/recurring"
	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	"github.com/pocket-ledger/backend/internal/application/usecase/savings"
	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/application/usecase/wallet"
	"github.com/pocket-ledger/backend/internal/domain/insight"
	"github.com/pocket-ledger/backend/internal/infra/server/router"
	"github.com/pocket-ledger/backend/internal/integration/adapters"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/pocket-ledger/backend/internal/integration/persistence"
)

// Options carries the collaborators that differ between the server, the CLI and tests.
// Nil fields fall back to production defaults.
type Options struct {
	Clock           adapter.Clock
	RateLimiter     adapter.RateLimiter
	PasswordService adapter.PasswordService
	HealthCheck     func(context.Context) bool
}

// UseCases exposes the use cases that entry points other than HTTP drive directly.
type UseCases struct {
	ExportTransactions *report.ExportTransactionsUseCase
	ListInsights       *dashboard.ListInsightsUseCase
}

// Injector holds all application dependencies.
type Injector struct {
	Config   *config.Config
	DB       *gorm.DB
	Location *time.Location
	Router   *router.Router
	UseCases UseCases
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, opts Options) (*Injector, error) {
	location, err := cfg.Ledger.Location()
	if err != nil {
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}
	rateLimiter := opts.RateLimiter
	if rateLimiter == nil {
		rateLimiter = adapters.NewMemoryRateLimiter(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window, clock)
	}
	passwordService := opts.PasswordService
	if passwordService == nil {
		passwordService = adapters.NewPasswordService()
	}
	healthCheck := opts.HealthCheck
	if healthCheck == nil {
		healthCheck = func(ctx context.Context) bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.PingContext(ctx) == nil
		}
	}

	// Repositories
	userRepo := persistence.NewUserRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	jarRepo := persistence.NewSavingsJarRepository(db, clock)
	debtRepo := persistence.NewDebtRepository(db)
	recurringRepo := persistence.NewRecurringRepository(db)

	// Services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, clock)
	engine := insight.NewEngine(insight.Options{
		HighValueThreshold: cfg.Ledger.HighValueThreshold,
		CurrencySymbol:     cfg.Ledger.CurrencySymbol,
	})

	// Use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	getBalancesUseCase := wallet.NewGetBalancesUseCase(transactionRepo)
	transferUseCase := wallet.NewTransferUseCase(transactionRepo, clock)
	adjustBalanceUseCase := wallet.NewAdjustBalanceUseCase(transactionRepo, clock)

	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo, clock, location)
	upsertBudgetUseCase := budget.NewUpsertBudgetUseCase(budgetRepo, clock)

	getStatsUseCase := dashboard.NewGetStatsUseCase(transactionRepo, budgetRepo, clock, location)
	listInsightsUseCase := dashboard.NewListInsightsUseCase(transactionRepo, budgetRepo, engine, clock, location)

	listJarsUseCase := savings.NewListJarsUseCase(jarRepo)
	createJarUseCase := savings.NewCreateJarUseCase(jarRepo)
	transferJarUseCase := savings.NewTransferJarUseCase(jarRepo, clock)
	deleteJarUseCase := savings.NewDeleteJarUseCase(jarRepo)

	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, clock)
	batchCreateDebtsUseCase := debt.NewBatchCreateDebtsUseCase(debtRepo, clock)
	splitBillUseCase := debt.NewSplitBillUseCase(batchCreateDebtsUseCase)
	settleDebtUseCase := debt.NewSettleDebtUseCase(debtRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)

	listRecurringUseCase := recurring.NewListRecurringUseCase(recurringRepo, clock, location)
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(recurringRepo)
	deleteRecurringUseCase := recurring.NewDeleteRecurringUseCase(recurringRepo)

	exportTransactionsUseCase := report.NewExportTransactionsUseCase(transactionRepo, location)

	// Controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(healthCheck),
		Auth:   controller.NewAuthController(registerUseCase, loginUseCase),
		Transaction: controller.NewTransactionController(
			listTransactionsUseCase,
			createTransactionUseCase,
			deleteTransactionUseCase,
			location,
		),
		Wallet: controller.NewWalletController(
			getBalancesUseCase,
			transferUseCase,
			adjustBalanceUseCase,
			location,
		),
		Budget:    controller.NewBudgetController(listBudgetsUseCase, upsertBudgetUseCase),
		Dashboard: controller.NewDashboardController(getStatsUseCase, listInsightsUseCase),
		Savings: controller.NewSavingsController(
			listJarsUseCase,
			createJarUseCase,
			transferJarUseCase,
			deleteJarUseCase,
		),
		Debt: controller.NewDebtController(
			listDebtsUseCase,
			createDebtUseCase,
			batchCreateDebtsUseCase,
			splitBillUseCase,
			settleDebtUseCase,
			deleteDebtUseCase,
			location,
		),
		Recurring: controller.NewRecurringController(
			listRecurringUseCase,
			createRecurringUseCase,
			deleteRecurringUseCase,
		),
		Report: controller.NewReportController(exportTransactionsUseCase, location),
	}

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(rateLimiter, "login")
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	return &Injector{
		Config:   cfg,
		DB:       db,
		Location: location,
		Router:   router.NewRouter(controllers, loginRateLimiter, authMiddleware),
		UseCases: UseCases{
			ExportTransactions: exportTransactionsUseCase,
			ListInsights:       listInsightsUseCase,
		},
	}, nil
}
