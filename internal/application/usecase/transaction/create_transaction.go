// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the longest description accepted.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for appending a transaction.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Kind        entity.TransactionKind
	Category    string
	Wallet      entity.Wallet
	Date        *time.Time // Optional, defaults to now
	Description string
}

// CreateTransactionOutput represents the output of appending a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase appends a transaction to the user's ledger.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute validates and stores the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	category := strings.TrimSpace(input.Category)
	description := strings.TrimSpace(input.Description)

	if err := Validate(input.Amount, input.Kind, input.Wallet, category); err != nil {
		return nil, err
	}
	if len(description) > MaxDescriptionLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	transaction := entity.NewTransaction(input.UserID, input.Amount, input.Kind, category, input.Wallet, date, description)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Debug("Transaction appended",
		"userID", input.UserID,
		"transactionID", transaction.ID,
		"kind", transaction.Kind,
		"wallet", transaction.Wallet,
	)

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}

// Validate checks the fields every ledger entry must carry.
func Validate(amount decimal.Decimal, kind entity.TransactionKind, wallet entity.Wallet, category string) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !valueobject.IsWholeCents(amount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !kind.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	if !wallet.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidWallet,
			"wallet must be 'cash' or 'online'",
			domainerror.ErrInvalidWallet,
		)
	}
	if strings.TrimSpace(category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}
	return nil
}
