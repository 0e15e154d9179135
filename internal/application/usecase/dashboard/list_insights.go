// Package dashboard contains dashboard and insight use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/insight"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// ListInsightsInput represents the input for generating insights.
type ListInsightsInput struct {
	UserID uuid.UUID
}

// ListInsightsOutput holds the insights in rule order.
type ListInsightsOutput struct {
	Insights []entity.Insight
}

// ListInsightsUseCase runs the insight rules over the current month.
type ListInsightsUseCase struct {
	ledgerReader LedgerReader
	budgetReader BudgetReader
	engine       *insight.Engine
	clock        adapter.Clock
	location     *time.Location
}

// NewListInsightsUseCase creates a new ListInsightsUseCase instance.
func NewListInsightsUseCase(
	ledgerReader LedgerReader,
	budgetReader BudgetReader,
	engine *insight.Engine,
	clock adapter.Clock,
	location *time.Location,
) *ListInsightsUseCase {
	return &ListInsightsUseCase{
		ledgerReader: ledgerReader,
		budgetReader: budgetReader,
		engine:       engine,
		clock:        clock,
		location:     location,
	}
}

// Execute generates the insights. It never writes.
func (uc *ListInsightsUseCase) Execute(ctx context.Context, input ListInsightsInput) (*ListInsightsOutput, error) {
	today := uc.clock.Now().In(uc.location)
	month := valueobject.MonthOf(today)

	expenses, err := monthExpenses(ctx, uc.ledgerReader, input.UserID, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch month expenses: %w", err)
	}

	budgets, err := uc.budgetReader.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	return &ListInsightsOutput{
		Insights: uc.engine.Generate(insight.Input{
			Today:         today,
			MonthExpenses: expenses,
			Budgets:       budgets,
		}),
	}, nil
}
