// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
type TransactionRepository interface {
	// Create appends a transaction to the ledger.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch appends several transactions as one atomic unit.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	// Returns ErrTransactionNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser lists a user's transactions matching the filter,
	// most recent first with the ID as tiebreak.
	FindByUser(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// WalletTotals sums income and expense per wallet over the full history.
	WalletTotals(ctx context.Context, userID uuid.UUID) ([]entity.WalletTotals, error)

	// CategoryTotals sums expenses per category for dates in [from, until).
	CategoryTotals(ctx context.Context, userID uuid.UUID, from, until time.Time) ([]entity.CategoryAmount, error)
}
