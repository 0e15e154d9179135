// Package savings contains savings jar use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// DeleteJarInput represents the input for jar deletion.
type DeleteJarInput struct {
	JarID  uuid.UUID
	UserID uuid.UUID
}

// DeleteJarOutput represents the output of jar deletion.
type DeleteJarOutput struct {
	Success bool
}

// DeleteJarUseCase removes a jar. Its mirrored transactions remain in the ledger.
type DeleteJarUseCase struct {
	jarRepo adapter.SavingsJarRepository
}

// NewDeleteJarUseCase creates a new DeleteJarUseCase instance.
func NewDeleteJarUseCase(jarRepo adapter.SavingsJarRepository) *DeleteJarUseCase {
	return &DeleteJarUseCase{
		jarRepo: jarRepo,
	}
}

// Execute performs the deletion.
func (uc *DeleteJarUseCase) Execute(ctx context.Context, input DeleteJarInput) (*DeleteJarOutput, error) {
	jar, err := findOwnedJar(ctx, uc.jarRepo, input.JarID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.jarRepo.Delete(ctx, jar.ID); err != nil {
		return nil, fmt.Errorf("failed to delete savings jar: %w", err)
	}

	return &DeleteJarOutput{
		Success: true,
	}, nil
}
