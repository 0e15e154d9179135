// Package debt contains IOU tracking use cases.
package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// SettleDebtInput represents the input for settling a debt.
type SettleDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// SettleDebtOutput holds the settled debt.
type SettleDebtOutput struct {
	Debt *entity.Debt
	// Changed is false when the debt was already settled.
	Changed bool
}

// SettleDebtUseCase moves a pending debt to settled.
type SettleDebtUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewSettleDebtUseCase creates a new SettleDebtUseCase instance.
func NewSettleDebtUseCase(debtRepo adapter.DebtRepository) *SettleDebtUseCase {
	return &SettleDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the settlement. Settling a settled debt succeeds without writing.
func (uc *SettleDebtUseCase) Execute(ctx context.Context, input SettleDebtInput) (*SettleDebtOutput, error) {
	debt, err := findOwnedDebt(ctx, uc.debtRepo, input.DebtID, input.UserID)
	if err != nil {
		return nil, err
	}

	if !debt.Settle() {
		return &SettleDebtOutput{Debt: debt}, nil
	}

	if err := uc.debtRepo.UpdateStatus(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to settle debt: %w", err)
	}

	return &SettleDebtOutput{
		Debt:    debt,
		Changed: true,
	}, nil
}

func findOwnedDebt(ctx context.Context, repo adapter.DebtRepository, debtID, userID uuid.UUID) (*entity.Debt, error) {
	debt, err := repo.FindByID(ctx, debtID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, debtNotFound()
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}

	if debt.UserID != userID {
		return nil, debtNotFound()
	}
	return debt, nil
}

func debtNotFound() error {
	return domainerror.NewDebtError(
		domainerror.ErrCodeDebtNotFound,
		"debt not found",
		domainerror.ErrDebtNotFound,
	)
}
