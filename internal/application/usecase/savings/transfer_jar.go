// Package savings contains savings jar use cases.
package savings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// DefaultJarWallet is used when a transfer names no wallet.
const DefaultJarWallet = entity.WalletOnline

// TransferJarInput moves money into (positive) or out of (negative) a jar.
type TransferJarInput struct {
	JarID  uuid.UUID
	UserID uuid.UUID
	Amount decimal.Decimal
	Wallet entity.Wallet // Optional, defaults to online
}

// TransferJarOutput holds the updated jar and its mirrored ledger entry.
type TransferJarOutput struct {
	Jar         *entity.SavingsJar
	Transaction *entity.Transaction
}

// TransferJarUseCase updates a jar balance together with its wallet-side transaction.
type TransferJarUseCase struct {
	jarRepo adapter.SavingsJarRepository
	clock   adapter.Clock
}

// NewTransferJarUseCase creates a new TransferJarUseCase instance.
func NewTransferJarUseCase(jarRepo adapter.SavingsJarRepository, clock adapter.Clock) *TransferJarUseCase {
	return &TransferJarUseCase{
		jarRepo: jarRepo,
		clock:   clock,
	}
}

// Execute performs the transfer. The jar is not clamped: it may exceed its target
// or go below zero.
func (uc *TransferJarUseCase) Execute(ctx context.Context, input TransferJarInput) (*TransferJarOutput, error) {
	if input.Amount.IsZero() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeZeroJarTransfer,
			"transfer amount must not be zero",
			domainerror.ErrZeroJarTransfer,
		)
	}
	if !valueobject.IsWholeCents(input.Amount) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidJarTransfer,
			"transfer amount must have at most two decimal places",
			domainerror.ErrInvalidJarTransfer,
		)
	}

	wallet := input.Wallet
	if wallet == "" {
		wallet = DefaultJarWallet
	}
	if !wallet.IsValid() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidJarWallet,
			"wallet must be 'cash' or 'online'",
			domainerror.ErrInvalidWallet,
		)
	}

	jar, err := findOwnedJar(ctx, uc.jarRepo, input.JarID, input.UserID)
	if err != nil {
		return nil, err
	}

	mirror := jar.MirrorTransaction(input.Amount, wallet, uc.clock.Now())

	updated, err := uc.jarRepo.Transfer(ctx, jar.ID, input.Amount, mirror)
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrJarNotFound):
			return nil, jarNotFound()
		case errors.Is(err, domainerror.ErrJarTransferIncomplete):
			slog.Error("Savings jar transfer rolled back",
				"error", err,
				"userID", input.UserID,
				"jarID", jar.ID,
			)
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeJarTransferIncomplete,
				"jar transfer could not be completed",
				err,
			)
		}
		return nil, fmt.Errorf("failed to transfer savings: %w", err)
	}

	slog.Info("Savings jar transfer recorded",
		"userID", input.UserID,
		"jarID", jar.ID,
		"amount", input.Amount.String(),
		"wallet", wallet,
	)

	return &TransferJarOutput{
		Jar:         updated,
		Transaction: mirror,
	}, nil
}

func findOwnedJar(ctx context.Context, repo adapter.SavingsJarRepository, jarID, userID uuid.UUID) (*entity.SavingsJar, error) {
	jar, err := repo.FindByID(ctx, jarID)
	if err != nil {
		if errors.Is(err, domainerror.ErrJarNotFound) {
			return nil, jarNotFound()
		}
		return nil, fmt.Errorf("failed to find savings jar: %w", err)
	}

	if jar.UserID != userID {
		return nil, jarNotFound()
	}
	return jar, nil
}

func jarNotFound() error {
	return domainerror.NewSavingsError(
		domainerror.ErrCodeJarNotFound,
		"savings jar not found",
		domainerror.ErrJarNotFound,
	)
}
