// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// UpsertBudgetInput represents the input for setting a category budget.
type UpsertBudgetInput struct {
	UserID   uuid.UUID
	Category string
	Limit    decimal.Decimal
}

// UpsertBudgetOutput represents the output of setting a category budget.
type UpsertBudgetOutput struct {
	Budget  *entity.Budget
	Created bool
}

// UpsertBudgetUseCase creates a budget or overwrites the limit of the existing one.
type UpsertBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewUpsertBudgetUseCase creates a new UpsertBudgetUseCase instance.
func NewUpsertBudgetUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *UpsertBudgetUseCase {
	return &UpsertBudgetUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute performs the upsert. An existing budget keeps its ID.
func (uc *UpsertBudgetUseCase) Execute(ctx context.Context, input UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetCategory,
			"category is required",
			domainerror.ErrMissingBudgetCategory,
		)
	}
	if !input.Limit.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be greater than zero",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	if !valueobject.IsWholeCents(input.Limit) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must have at most two decimal places",
			domainerror.ErrInvalidBudgetLimit,
		)
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	byCategory := make(map[string]*entity.Budget, len(budgets))
	for _, b := range budgets {
		byCategory[b.Category] = b
	}

	if existing, ok := byCategory[category]; ok {
		existing.Limit = input.Limit
		existing.UpdatedAt = uc.clock.Now().UTC()
		if err := uc.budgetRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update budget: %w", err)
		}
		slog.Debug("Budget limit overwritten", "userID", input.UserID, "category", category)
		return &UpsertBudgetOutput{Budget: existing}, nil
	}

	budget := entity.NewBudget(input.UserID, category, input.Limit)
	budget.CreatedAt = uc.clock.Now().UTC()
	budget.UpdatedAt = budget.CreatedAt
	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}
	slog.Debug("Budget created", "userID", input.UserID, "category", category)

	return &UpsertBudgetOutput{
		Budget:  budget,
		Created: true,
	}, nil
}
