// Package recurring contains subscription use cases.
package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// DeleteRecurringInput represents the input for removing a subscription.
type DeleteRecurringInput struct {
	RecurringID uuid.UUID
	UserID      uuid.UUID
}

// DeleteRecurringOutput represents the output of removing a subscription.
type DeleteRecurringOutput struct {
	Success bool
}

// DeleteRecurringUseCase removes a subscription after checking ownership.
type DeleteRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewDeleteRecurringUseCase creates a new DeleteRecurringUseCase instance.
func NewDeleteRecurringUseCase(recurringRepo adapter.RecurringRepository) *DeleteRecurringUseCase {
	return &DeleteRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteRecurringUseCase) Execute(ctx context.Context, input DeleteRecurringInput) (*DeleteRecurringOutput, error) {
	recurring, err := uc.recurringRepo.FindByID(ctx, input.RecurringID)
	if err != nil && !errors.Is(err, domainerror.ErrRecurringNotFound) {
		return nil, fmt.Errorf("failed to find recurring entry: %w", err)
	}
	if err != nil || recurring.UserID != input.UserID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring entry not found",
			domainerror.ErrRecurringNotFound,
		)
	}

	if err := uc.recurringRepo.Delete(ctx, recurring.ID); err != nil {
		return nil, fmt.Errorf("failed to delete recurring entry: %w", err)
	}

	return &DeleteRecurringOutput{
		Success: true,
	}, nil
}
