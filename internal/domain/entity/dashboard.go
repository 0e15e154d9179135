// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// WalletBalances holds the derived balance of every wallet.
type WalletBalances struct {
	Cash   decimal.Decimal
	Online decimal.Decimal
}

// Total returns the sum across wallets.
func (b WalletBalances) Total() decimal.Decimal {
	return b.Cash.Add(b.Online)
}

// Of returns the balance of a single wallet.
func (b WalletBalances) Of(w Wallet) decimal.Decimal {
	if w == WalletCash {
		return b.Cash
	}
	return b.Online
}

// WalletTotals is the raw income/expense sum for one wallet.
type WalletTotals struct {
	Wallet  Wallet
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// CategoryAmount is the spending of one category in a period.
type CategoryAmount struct {
	Category string
	Total    decimal.Decimal
}

// DailyAmount is the spending of one calendar day.
type DailyAmount struct {
	Day   time.Time
	Total decimal.Decimal
}

// DashboardStats bundles every figure the dashboard shows.
type DashboardStats struct {
	Balances         WalletBalances
	MonthlySpending  decimal.Decimal
	CategorySpending []CategoryAmount
	DailySpending    []DailyAmount
	TotalBudgetLimit decimal.Decimal
	DailySafeToSpend decimal.Decimal
}
