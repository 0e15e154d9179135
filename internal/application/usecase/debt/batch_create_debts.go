// Package debt contains IOU tracking use cases.
package debt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
)

// BatchCreateDebtsInput represents several IOUs recorded together.
type BatchCreateDebtsInput struct {
	UserID  uuid.UUID
	Entries []DebtEntry
}

// BatchCreateDebtsOutput holds the created debts in input order.
type BatchCreateDebtsOutput struct {
	Debts []*entity.Debt
}

// BatchCreateDebtsUseCase validates every entry before storing any of them.
type BatchCreateDebtsUseCase struct {
	debtRepo adapter.DebtRepository
	clock    adapter.Clock
}

// NewBatchCreateDebtsUseCase creates a new BatchCreateDebtsUseCase instance.
func NewBatchCreateDebtsUseCase(debtRepo adapter.DebtRepository, clock adapter.Clock) *BatchCreateDebtsUseCase {
	return &BatchCreateDebtsUseCase{
		debtRepo: debtRepo,
		clock:    clock,
	}
}

// Execute performs the batch creation.
func (uc *BatchCreateDebtsUseCase) Execute(ctx context.Context, input BatchCreateDebtsInput) (*BatchCreateDebtsOutput, error) {
	if len(input.Entries) == 0 {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeEmptyDebtBatch,
			"at least one debt is required",
			domainerror.ErrEmptyDebtBatch,
		)
	}

	now := uc.clock.Now()
	debts := make([]*entity.Debt, 0, len(input.Entries))
	for _, entry := range input.Entries {
		debt, err := newDebt(input.UserID, entry, now)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	if err := uc.debtRepo.CreateBatch(ctx, debts); err != nil {
		return nil, fmt.Errorf("failed to create debts: %w", err)
	}

	slog.Debug("Debts created", "userID", input.UserID, "count", len(debts))

	return &BatchCreateDebtsOutput{
		Debts: debts,
	}, nil
}
