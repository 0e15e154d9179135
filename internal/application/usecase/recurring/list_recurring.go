// Package recurring contains subscription use cases.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// ListRecurringInput represents the input for listing subscriptions.
type ListRecurringInput struct {
	UserID uuid.UUID
}

// ScheduledRecurring is a subscription with its next billing date.
type ScheduledRecurring struct {
	Recurring       *entity.Recurring
	NextBillingDate time.Time
}

// ListRecurringOutput holds subscriptions by billing day and the monthly expense total.
type ListRecurringOutput struct {
	Items        []ScheduledRecurring
	MonthlyTotal decimal.Decimal
}

// ListRecurringUseCase lists subscriptions.
type ListRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
	clock         adapter.Clock
	location      *time.Location
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(recurringRepo adapter.RecurringRepository, clock adapter.Clock, location *time.Location) *ListRecurringUseCase {
	return &ListRecurringUseCase{
		recurringRepo: recurringRepo,
		clock:         clock,
		location:      location,
	}
}

// Execute performs the listing.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	entries, err := uc.recurringRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring entries: %w", err)
	}

	today := uc.clock.Now().In(uc.location)
	out := &ListRecurringOutput{
		Items:        make([]ScheduledRecurring, 0, len(entries)),
		MonthlyTotal: decimal.Zero,
	}
	for _, r := range entries {
		out.Items = append(out.Items, ScheduledRecurring{
			Recurring:       r,
			NextBillingDate: valueobject.NextBillingDate(today, r.BillingDate),
		})
		if r.Kind == entity.TransactionKindExpense {
			out.MonthlyTotal = out.MonthlyTotal.Add(r.Amount)
		}
	}
	return out, nil
}
