// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// RecurringRepository defines the interface for subscription persistence operations.
type RecurringRepository interface {
	Create(ctx context.Context, recurring *entity.Recurring) error

	// FindByID returns ErrRecurringNotFound when the entry does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Recurring, error)

	// FindByUser lists entries ordered by billing day.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Recurring, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
