// Package wallet contains wallet balance use cases.
package wallet

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// AdjustmentDescription is written on every balance correction.
const AdjustmentDescription = "Manual Balance Correction"

// AdjustBalanceInput sets a wallet to an observed real-world balance.
type AdjustBalanceInput struct {
	UserID        uuid.UUID
	Wallet        entity.Wallet
	TargetBalance decimal.Decimal
}

// AdjustBalanceOutput holds the new balance and the correcting transaction, if any.
type AdjustBalanceOutput struct {
	Balance     decimal.Decimal
	Transaction *entity.Transaction // nil when the balance already matched
}

// AdjustBalanceUseCase appends the difference between the target and the derived balance.
type AdjustBalanceUseCase struct {
	transactionRepo adapter.TransactionRepository
	clock           adapter.Clock
}

// NewAdjustBalanceUseCase creates a new AdjustBalanceUseCase instance.
func NewAdjustBalanceUseCase(transactionRepo adapter.TransactionRepository, clock adapter.Clock) *AdjustBalanceUseCase {
	return &AdjustBalanceUseCase{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Execute performs the adjustment.
func (uc *AdjustBalanceUseCase) Execute(ctx context.Context, input AdjustBalanceInput) (*AdjustBalanceOutput, error) {
	if !input.Wallet.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidWallet,
			"wallet must be 'cash' or 'online'",
			domainerror.ErrInvalidWallet,
		)
	}
	if !valueobject.IsWholeCents(input.TargetBalance) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"balance must have at most two decimal places",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	balances, err := currentBalances(ctx, uc.transactionRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	diff := input.TargetBalance.Sub(balances.Of(input.Wallet))
	if diff.IsZero() {
		return &AdjustBalanceOutput{Balance: input.TargetBalance}, nil
	}

	kind := entity.TransactionKindIncome
	if diff.IsNegative() {
		kind = entity.TransactionKindExpense
	}

	correction := entity.NewTransaction(input.UserID, diff.Abs(), kind,
		entity.CategoryBalanceAdjustment, input.Wallet, uc.clock.Now(), AdjustmentDescription)

	if err := uc.transactionRepo.Create(ctx, correction); err != nil {
		return nil, fmt.Errorf("failed to store balance adjustment: %w", err)
	}

	slog.Info("Wallet balance adjusted",
		"userID", input.UserID,
		"wallet", input.Wallet,
		"difference", diff.String(),
	)

	return &AdjustBalanceOutput{
		Balance:     input.TargetBalance,
		Transaction: correction,
	}, nil
}
