// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget.
	Create(ctx context.Context, budget *entity.Budget) error

	// Update overwrites the limit of an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// FindByUser retrieves all budgets for a user ordered by category.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)
}
