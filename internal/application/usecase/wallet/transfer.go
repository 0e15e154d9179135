// Package wallet contains wallet balance use cases.
package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// TransferInput represents a move of money between the two wallets.
type TransferInput struct {
	UserID uuid.UUID
	From   entity.Wallet
	To     entity.Wallet
	Amount decimal.Decimal
	Date   *time.Time // Optional, defaults to now
}

// TransferOutput holds both legs of the transfer.
type TransferOutput struct {
	Debit  *entity.Transaction
	Credit *entity.Transaction
}

// TransferUseCase appends a paired expense and income of category Transfer.
type TransferUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewTransferUseCase creates a new TransferUseCase instance.
func NewTransferUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *TransferUseCase {
	return &TransferUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the transfer. Both legs are stored or neither is.
func (uc *TransferUseCase) Execute(ctx context.Context, input TransferInput) (*TransferOutput, error) {
	if !input.From.IsValid() || !input.To.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidWallet,
			"wallet must be 'cash' or 'online'",
			domainerror.ErrInvalidWallet,
		)
	}
	if input.From == input.To {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSameWalletTransfer,
			"source and destination wallets must differ",
			domainerror.ErrSameWalletTransfer,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !valueobject.IsWholeCents(input.Amount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must have at most two decimal places",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	debit := entity.NewTransaction(input.UserID, input.Amount, entity.TransactionKindExpense,
		entity.CategoryTransfer, input.From, date, "Transfer to "+string(input.To))
	credit := entity.NewTransaction(input.UserID, input.Amount, entity.TransactionKindIncome,
		entity.CategoryTransfer, input.To, date, "Transfer from "+string(input.From))

	if err := uc.transactionRepo.CreateBatch(ctx, []*entity.Transaction{debit, credit}); err != nil {
		return nil, fmt.Errorf("failed to store wallet transfer: %w", err)
	}

	slog.Info("Wallet transfer recorded",
		"userID", input.UserID,
		"from", input.From,
		"to", input.To,
		"amount", input.Amount.String(),
	)

	return &TransferOutput{
		Debit:  debit,
		Credit: credit,
	}, nil
}
