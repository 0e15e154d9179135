// Package debt contains IOU tracking use cases.
package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	UserID uuid.UUID
}

// ListDebtsOutput holds the debts and the pending totals in each direction.
type ListDebtsOutput struct {
	Debts     []*entity.Debt
	OwedToYou decimal.Decimal // pending owed_by
	YouOwe    decimal.Decimal // pending owed_to
}

// ListDebtsUseCase lists debts, pending first then most recent first.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute performs the listing.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	out := &ListDebtsOutput{
		Debts:     debts,
		OwedToYou: decimal.Zero,
		YouOwe:    decimal.Zero,
	}
	for _, d := range debts {
		if d.Status != entity.DebtStatusPending {
			continue
		}
		if d.Direction == entity.DebtOwedBy {
			out.OwedToYou = out.OwedToYou.Add(d.Amount)
		} else {
			out.YouOwe = out.YouOwe.Add(d.Amount)
		}
	}
	return out, nil
}
