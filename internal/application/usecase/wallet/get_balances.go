// Package wallet contains wallet balance use cases.
package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/ledger"
)

// GetBalancesInput represents the input for reading wallet balances.
type GetBalancesInput struct {
	UserID uuid.UUID
}

// GetBalancesOutput holds per-wallet balances and their total.
type GetBalancesOutput struct {
	Balances entity.WalletBalances
	Total    decimal.Decimal
}

// GetBalancesUseCase derives wallet balances from the full ledger history.
type GetBalancesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetBalancesUseCase creates a new GetBalancesUseCase instance.
func NewGetBalancesUseCase(transactionRepo adapter.TransactionRepository) *GetBalancesUseCase {
	return &GetBalancesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the balances.
func (uc *GetBalancesUseCase) Execute(ctx context.Context, input GetBalancesInput) (*GetBalancesOutput, error) {
	balances, err := currentBalances(ctx, uc.transactionRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetBalancesOutput{
		Balances: balances,
		Total:    balances.Total(),
	}, nil
}

func currentBalances(ctx context.Context, repo adapter.TransactionRepository, userID uuid.UUID) (entity.WalletBalances, error) {
	totals, err := repo.WalletTotals(ctx, userID)
	if err != nil {
		return entity.WalletBalances{}, fmt.Errorf("failed to sum wallet totals: %w", err)
	}
	return ledger.Balances(totals), nil
}
