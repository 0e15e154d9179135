// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtDirection tells who owes whom.
type DebtDirection string

const (
	DebtOwedTo DebtDirection = "owed_to" // the user owes the person
	DebtOwedBy DebtDirection = "owed_by" // the person owes the user
)

// IsValid reports whether the direction is known.
func (d DebtDirection) IsValid() bool {
	return d == DebtOwedTo || d == DebtOwedBy
}

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "pending"
	DebtStatusSettled DebtStatus = "settled"
)

// Debt is an IOU between the user and another person.
// It does not affect wallet balances.
type Debt struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Person    string
	Amount    decimal.Decimal
	Direction DebtDirection
	Status    DebtStatus
	Date      time.Time
}

// NewDebt creates a pending debt.
func NewDebt(userID uuid.UUID, person string, amount decimal.Decimal, direction DebtDirection, date time.Time) *Debt {
	return &Debt{
		ID:        NewID(),
		UserID:    userID,
		Person:    person,
		Amount:    amount,
		Direction: direction,
		Status:    DebtStatusPending,
		Date:      date.UTC(),
	}
}

// Settle moves the debt to its terminal state. It reports whether anything changed.
func (d *Debt) Settle() bool {
	if d.Status == DebtStatusSettled {
		return false
	}
	d.Status = DebtStatusSettled
	return true
}
