// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultJarEmoji is used when a jar is created without an emoji.
const DefaultJarEmoji = "💰"

// SavingsJar is a named savings goal with its own balance.
type SavingsJar struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Emoji         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSavingsJar creates an empty jar.
func NewSavingsJar(userID uuid.UUID, name string, targetAmount decimal.Decimal, emoji string) *SavingsJar {
	now := time.Now().UTC()
	if emoji == "" {
		emoji = DefaultJarEmoji
	}

	return &SavingsJar{
		ID:            NewID(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Emoji:         emoji,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Progress returns the filled percentage of the jar rounded to two places.
func (j *SavingsJar) Progress() decimal.Decimal {
	if !j.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return j.CurrentAmount.Div(j.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// MirrorTransaction builds the wallet-side transaction that balances a jar delta.
// Money put into the jar leaves the wallet (expense); money taken out returns (income).
func (j *SavingsJar) MirrorTransaction(delta decimal.Decimal, wallet Wallet, at time.Time) *Transaction {
	kind := TransactionKindExpense
	description := "Saved to " + j.Name
	if delta.IsNegative() {
		kind = TransactionKindIncome
		description = "Withdrew from " + j.Name
	}

	return NewTransaction(j.UserID, delta.Abs(), kind, CategorySavings, wallet, at, description)
}
