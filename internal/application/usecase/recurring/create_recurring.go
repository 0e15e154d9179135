// Package recurring contains subscription use cases.
package recurring

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// CreateRecurringInput represents the input for declaring a subscription.
type CreateRecurringInput struct {
	UserID      uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Kind        entity.TransactionKind
	BillingDate int
	Category    string // Optional, defaults to Other
}

// CreateRecurringOutput represents the output of declaring a subscription.
type CreateRecurringOutput struct {
	Recurring *entity.Recurring
}

// CreateRecurringUseCase stores a subscription as reference data.
type CreateRecurringUseCase struct {
	recurringRepo adapter.RecurringRepository
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(recurringRepo adapter.RecurringRepository) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute performs the creation.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecurringName,
			"name is required",
			domainerror.ErrMissingRecurringName,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidRecurringAmount,
		)
	}
	if !valueobject.IsWholeCents(input.Amount) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidRecurringAmount,
		)
	}
	if !input.Kind.IsValid() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidRecurringKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if input.BillingDate < 1 || input.BillingDate > 31 {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidBillingDate,
			"billing date must be a day between 1 and 31",
			domainerror.ErrInvalidBillingDate,
		)
	}

	recurring := entity.NewRecurring(input.UserID, name, input.Amount, input.Kind, input.BillingDate, strings.TrimSpace(input.Category))

	if err := uc.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring entry: %w", err)
	}

	return &CreateRecurringOutput{
		Recurring: recurring,
	}, nil
}
