// Package savings contains savings jar use cases.
package savings

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

// CreateJarInput represents the input for jar creation.
type CreateJarInput struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Emoji        string // Optional
}

// CreateJarOutput represents the output of jar creation.
type CreateJarOutput struct {
	Jar *entity.SavingsJar
}

// CreateJarUseCase creates an empty savings jar.
type CreateJarUseCase struct {
	jarRepo adapter.SavingsJarRepository
}

// NewCreateJarUseCase creates a new CreateJarUseCase instance.
func NewCreateJarUseCase(jarRepo adapter.SavingsJarRepository) *CreateJarUseCase {
	return &CreateJarUseCase{
		jarRepo: jarRepo,
	}
}

// Execute performs the jar creation.
func (uc *CreateJarUseCase) Execute(ctx context.Context, input CreateJarInput) (*CreateJarOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeMissingJarName,
			"jar name is required",
			domainerror.ErrMissingJarName,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidJarTarget,
			"target amount must be greater than zero",
			domainerror.ErrInvalidJarTarget,
		)
	}
	if !valueobject.IsWholeCents(input.TargetAmount) {
		return nil, domainerror.NewSavingsError(
			domainerror.ErrCodeInvalidJarTarget,
			"target amount must have at most two decimal places",
			domainerror.ErrInvalidJarTarget,
		)
	}

	jar := entity.NewSavingsJar(input.UserID, name, input.TargetAmount, strings.TrimSpace(input.Emoji))

	if err := uc.jarRepo.Create(ctx, jar); err != nil {
		return nil, fmt.Errorf("failed to create savings jar: %w", err)
	}

	return &CreateJarOutput{
		Jar: jar,
	}, nil
}
