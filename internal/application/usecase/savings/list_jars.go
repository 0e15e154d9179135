// Package savings contains savings jar use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// ListJarsInput represents the input for listing jars.
type ListJarsInput struct {
	UserID uuid.UUID
}

// ListJarsOutput represents the output of listing jars.
type ListJarsOutput struct {
	Jars []*entity.SavingsJar
}

// ListJarsUseCase lists a user's jars.
type ListJarsUseCase struct {
	jarRepo adapter.SavingsJarRepository
}

// NewListJarsUseCase creates a new ListJarsUseCase instance.
func NewListJarsUseCase(jarRepo adapter.SavingsJarRepository) *ListJarsUseCase {
	return &ListJarsUseCase{
		jarRepo: jarRepo,
	}
}

// Execute performs the listing.
func (uc *ListJarsUseCase) Execute(ctx context.Context, input ListJarsInput) (*ListJarsOutput, error) {
	jars, err := uc.jarRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings jars: %w", err)
	}

	return &ListJarsOutput{
		Jars: jars,
	}, nil
}
