// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultRecurringCategory is applied when a subscription has no category.
const DefaultRecurringCategory = "Other"

// Recurring is a declared subscription or regular income. It is reference data only;
// nothing posts it to the ledger automatically.
type Recurring struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Kind        TransactionKind
	BillingDate int // day of month, 1..31
	Category    string
	CreatedAt   time.Time
}

// NewRecurring creates a new Recurring entity.
func NewRecurring(userID uuid.UUID, name string, amount decimal.Decimal, kind TransactionKind, billingDate int, category string) *Recurring {
	if category == "" {
		category = DefaultRecurringCategory
	}

	return &Recurring{
		ID:          NewID(),
		UserID:      userID,
		Name:        name,
		Amount:      amount,
		Kind:        kind,
		BillingDate: billingDate,
		Category:    category,
		CreatedAt:   time.Now().UTC(),
	}
}
