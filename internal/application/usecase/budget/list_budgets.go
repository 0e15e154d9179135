// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/ledger"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput holds every budget with its spending in the current month.
type ListBudgetsOutput struct {
	Budgets []entity.BudgetWithSpent
	Month   valueobject.Window
}

// ListBudgetsUseCase lists budgets with spent recomputed from the ledger.
type ListBudgetsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
	location        *time.Location
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	clock adapter.Clock,
	location *time.Location,
) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		clock:           clock,
		location:        location,
	}
}

// Execute performs the listing.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	month := valueobject.MonthOf(uc.clock.Now().In(uc.location))

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	spending, err := uc.transactionRepo.CategoryTotals(ctx, input.UserID, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to sum category spending: %w", err)
	}

	return &ListBudgetsOutput{
		Budgets: ledger.WithSpent(budgets, spending),
		Month:   month,
	}, nil
}
