// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind represents the direction of a money movement.
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// IsValid reports whether the kind is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	return k == TransactionKindIncome || k == TransactionKindExpense
}

// Wallet represents one of the money pools a transaction moves through.
type Wallet string

const (
	WalletCash   Wallet = "cash"
	WalletOnline Wallet = "online"
)

// Wallets lists every wallet in display order.
var Wallets = []Wallet{WalletCash, WalletOnline}

// IsValid reports whether the wallet is one of the known wallets.
func (w Wallet) IsValid() bool {
	return w == WalletCash || w == WalletOnline
}

// Reserved categories written by the ledger itself.
const (
	CategorySavings           = "Savings"
	CategoryTransfer          = "Transfer"
	CategoryBalanceAdjustment = "Balance Adjustment"
)

// Transaction is a single dated money movement in a user's ledger.
// Transactions are immutable once created; they can only be deleted.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal // Always positive, direction is carried by Kind
	Kind        TransactionKind
	Category    string
	Wallet      Wallet
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity with a time-ordered ID.
func NewTransaction(
	userID uuid.UUID,
	amount decimal.Decimal,
	kind TransactionKind,
	category string,
	wallet Wallet,
	date time.Time,
	description string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          NewID(),
		UserID:      userID,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		Wallet:      wallet,
		Date:        date.UTC(),
		Description: description,
		CreatedAt:   now,
	}
}

// SignedAmount returns the amount with income positive and expense negative.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Kind == TransactionKindExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionFilter narrows a ledger listing. Zero values mean "no restriction".
type TransactionFilter struct {
	From     *time.Time // inclusive
	Until    *time.Time // exclusive
	Kind     *TransactionKind
	Wallet   *Wallet
	Category string
}

// NewID returns a new UUIDv7, which sorts in creation order.
func NewID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return id
}
