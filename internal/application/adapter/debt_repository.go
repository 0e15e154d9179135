// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// Create creates a new debt.
	Create(ctx context.Context, debt *entity.Debt) error

	// CreateBatch creates several debts in one database transaction.
	CreateBatch(ctx context.Context, debts []*entity.Debt) error

	// FindByID retrieves a debt by its ID.
	// Returns ErrDebtNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error)

	// FindByUser lists debts with pending ones first, most recent first within each status.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error)

	// UpdateStatus persists the debt status.
	UpdateStatus(ctx context.Context, debt *entity.Debt) error

	// Delete removes a debt.
	Delete(ctx context.Context, id uuid.UUID) error
}
