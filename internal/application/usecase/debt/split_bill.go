// Package debt contains IOU tracking use cases.
package debt

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// SplitBillInput describes a bill the user paid and shares with participants.
type SplitBillInput struct {
	UserID       uuid.UUID
	Total        decimal.Decimal
	Participants []string
	Date         *time.Time // Optional, defaults to now
}

// SplitBillOutput holds the per-person share and the debts created.
type SplitBillOutput struct {
	Share decimal.Decimal
	Debts []*entity.Debt
}

// SplitBillUseCase splits a bill evenly between the user and the participants
// and records what each participant owes.
type SplitBillUseCase struct {
	batch *BatchCreateDebtsUseCase
}

// NewSplitBillUseCase creates a new SplitBillUseCase instance.
func NewSplitBillUseCase(batch *BatchCreateDebtsUseCase) *SplitBillUseCase {
	return &SplitBillUseCase{
		batch: batch,
	}
}

// Execute performs the split. The user's own share is not recorded.
func (uc *SplitBillUseCase) Execute(ctx context.Context, input SplitBillInput) (*SplitBillOutput, error) {
	if len(input.Participants) == 0 {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeNoSplitParticipants,
			"at least one participant is required",
			domainerror.ErrNoSplitParticipants,
		)
	}
	if !input.Total.IsPositive() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"total must be greater than zero",
			domainerror.ErrInvalidDebtAmount,
		)
	}
	if !valueobject.IsWholeCents(input.Total) {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtAmount,
			"total must have at most two decimal places",
			domainerror.ErrInvalidDebtAmount,
		)
	}

	share := input.Total.Div(decimal.NewFromInt(int64(len(input.Participants) + 1))).Round(2)

	entries := make([]DebtEntry, 0, len(input.Participants))
	for _, person := range input.Participants {
		entries = append(entries, DebtEntry{
			Person:    strings.TrimSpace(person),
			Amount:    share,
			Direction: entity.DebtOwedBy,
			Date:      input.Date,
		})
	}

	out, err := uc.batch.Execute(ctx, BatchCreateDebtsInput{
		UserID:  input.UserID,
		Entries: entries,
	})
	if err != nil {
		return nil, err
	}

	return &SplitBillOutput{
		Share: share,
		Debts: out.Debts,
	}, nil
}
