// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// SavingsJarRepository defines the interface for savings jar persistence operations.
type SavingsJarRepository interface {
	// Create creates a new jar.
	Create(ctx context.Context, jar *entity.SavingsJar) error

	// FindByID retrieves a jar by its ID.
	// Returns ErrJarNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsJar, error)

	// FindByUser retrieves all jars of a user, oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsJar, error)

	// Transfer adds delta to the jar balance and appends the mirrored ledger
	// transaction in a single database transaction. Either both are stored or neither is.
	Transfer(ctx context.Context, jarID uuid.UUID, delta decimal.Decimal, mirror *entity.Transaction) (*entity.SavingsJar, error)

	// Delete removes the jar. Mirrored transactions stay in the ledger.
	Delete(ctx context.Context, id uuid.UUID) error
}
