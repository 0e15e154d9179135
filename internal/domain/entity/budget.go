// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending limit for one category.
// A user has at most one budget per category.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Limit     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, category string, limit decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        NewID(),
		UserID:    userID,
		Category:  category,
		Limit:     limit,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetWithSpent is a budget together with its current-month consumption.
type BudgetWithSpent struct {
	Budget *Budget
	Spent  decimal.Decimal
}

// Remaining returns how much of the limit is left, which may be negative.
func (b BudgetWithSpent) Remaining() decimal.Decimal {
	return b.Budget.Limit.Sub(b.Spent)
}
