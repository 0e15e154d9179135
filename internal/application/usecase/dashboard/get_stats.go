// Package dashboard contains dashboard and insight use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/ledger"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// GetStatsInput represents the input for the dashboard figures.
type GetStatsInput struct {
	UserID uuid.UUID
}

// GetStatsOutput bundles the dashboard figures with the month they cover.
type GetStatsOutput struct {
	Stats entity.DashboardStats
	Month valueobject.Window
	Today time.Time
}

// GetStatsUseCase computes every dashboard figure from current ledger state.
type GetStatsUseCase struct {
	ledgerReader LedgerReader
	budgetReader BudgetReader
	clock        adapter.Clock
	location     *time.Location
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(
	ledgerReader LedgerReader,
	budgetReader BudgetReader,
	clock adapter.Clock,
	location *time.Location,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		ledgerReader: ledgerReader,
		budgetReader: budgetReader,
		clock:        clock,
		location:     location,
	}
}

// Execute gathers the independent aggregates concurrently and derives the rest.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	today := uc.clock.Now().In(uc.location)
	month := valueobject.MonthOf(today)

	var (
		walletTotals []entity.WalletTotals
		categories   []entity.CategoryAmount
		expenses     []*entity.Transaction
		budgets      []*entity.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if walletTotals, err = uc.ledgerReader.WalletTotals(gctx, input.UserID); err != nil {
			return fmt.Errorf("failed to sum wallet totals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if categories, err = uc.ledgerReader.CategoryTotals(gctx, input.UserID, month.Start, month.End); err != nil {
			return fmt.Errorf("failed to sum category spending: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if expenses, err = monthExpenses(gctx, uc.ledgerReader, input.UserID, month.Start, month.End); err != nil {
			return fmt.Errorf("failed to fetch month expenses: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if budgets, err = uc.budgetReader.FindByUser(gctx, input.UserID); err != nil {
			return fmt.Errorf("failed to fetch budgets: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ledger.SortCategories(categories)
	monthlySpending := ledger.TotalSpent(categories)
	totalLimit := ledger.TotalLimit(budgets)

	stats := entity.DashboardStats{
		Balances:         ledger.Balances(walletTotals),
		MonthlySpending:  monthlySpending,
		CategorySpending: categories,
		DailySpending:    ledger.DailyTrend(expenses, uc.location),
		TotalBudgetLimit: totalLimit,
		DailySafeToSpend: ledger.SafeToSpend(totalLimit, monthlySpending, today),
	}
	if stats.CategorySpending == nil {
		stats.CategorySpending = []entity.CategoryAmount{}
	}

	return &GetStatsOutput{
		Stats: stats,
		Month: month,
		Today: today,
	}, nil
}
