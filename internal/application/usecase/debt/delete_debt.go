// Package debt contains IOU tracking use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// DeleteDebtOutput represents the output of debt deletion.
type DeleteDebtOutput struct {
	Success bool
}

// DeleteDebtUseCase removes a debt in any status.
type DeleteDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) (*DeleteDebtOutput, error) {
	debt, err := findOwnedDebt(ctx, uc.debtRepo, input.DebtID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Delete(ctx, debt.ID); err != nil {
		return nil, fmt.Errorf("failed to delete debt: %w", err)
	}

	return &DeleteDebtOutput{
		Success: true,
	}, nil
}
