// Package debt contains IOU tracking use cases.
package debt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// DebtEntry describes one IOU to record.
type DebtEntry struct {
	Person    string
	Amount    decimal.Decimal
	Direction entity.DebtDirection
	Date      *time.Time // Optional, defaults to now
}

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID uuid.UUID
	Entry  DebtEntry
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt *entity.Debt
}

// CreateDebtUseCase records a single pending debt.
type CreateDebtUseCase struct {
	debtRepo adapter.DebtRepository
	clock    adapter.Clock
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(debtRepo adapter.DebtRepository, clock adapter.Clock) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo: debtRepo,
		clock:    clock,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
	debt, err := newDebt(input.UserID, input.Entry, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, fmt.Errorf("failed to create debt: %w", err)
	}

	return &CreateDebtOutput{
		Debt: debt,
	}, nil
}

// newDebt validates an entry and builds the pending debt.
func newDebt(userID uuid.UUID, entry DebtEntry, now time.Time) (*entity.Debt, error) {
	person := strings.TrimSpace(entry.Person)
	if person == "" {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeMissingDebtPerson,
			"person is required",
			domainerror.ErrMissingDebtPerson,
		)
	}
	if !entry.Amount.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidDebtAmount,
		)
	}
	if !valueobject.IsWholeCents(entry.Amount) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidDebtAmount,
		)
	}
	if !entry.Direction.IsValid() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtDirection,
			"direction must be 'owed_to' or 'owed_by'",
			domainerror.ErrInvalidDebtDirection,
		)
	}

	date := now
	if entry.Date != nil {
		date = *entry.Date
	}
	return entity.NewDebt(userID, person, entry.Amount, entry.Direction, date), nil
}
