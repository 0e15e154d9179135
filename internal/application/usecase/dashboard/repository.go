// Package dashboard contains dashboard and insight use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// LedgerReader is the read side of the ledger the dashboard aggregates.
type LedgerReader interface {
	// WalletTotals sums income and expense per wallet over the full history.
	WalletTotals(ctx context.Context, userID uuid.UUID) ([]entity.WalletTotals, error)

	// CategoryTotals sums expenses per category for dates in [from, until).
	CategoryTotals(ctx context.Context, userID uuid.UUID, from, until time.Time) ([]entity.CategoryAmount, error)

	// FindByUser lists transactions matching the filter, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error)
}

// BudgetReader lists a user's budgets.
type BudgetReader interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)
}

func monthExpenses(ctx context.Context, reader LedgerReader, userID uuid.UUID, from, until time.Time) ([]*entity.Transaction, error) {
	kind := entity.TransactionKindExpense
	return reader.FindByUser(ctx, userID, entity.TransactionFilter{
		From:  &from,
		Until: &until,
		Kind:  &kind,
	})
}
