// Package ledger derives balances, budget consumption and the daily safe-to-spend
// figure from ledger records. Every function is pure and takes its reference date
// explicitly.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// Balances folds per-wallet income/expense sums into wallet balances.
// Wallets without records stay at zero.
func Balances(totals []entity.WalletTotals) entity.WalletBalances {
	balances := entity.WalletBalances{Cash: decimal.Zero, Online: decimal.Zero}
	for _, t := range totals {
		net := t.Income.Sub(t.Expense)
		switch t.Wallet {
		case entity.WalletCash:
			balances.Cash = balances.Cash.Add(net)
		case entity.WalletOnline:
			balances.Online = balances.Online.Add(net)
		}
	}
	return balances
}

// TotalLimit sums every budget limit.
func TotalLimit(budgets []*entity.Budget) decimal.Decimal {
	total := decimal.Zero
	for _, b := range budgets {
		total = total.Add(b.Limit)
	}
	return total
}

// TotalSpent sums category spending.
func TotalSpent(spending []entity.CategoryAmount) decimal.Decimal {
	total := decimal.Zero
	for _, c := range spending {
		total = total.Add(c.Total)
	}
	return total
}

// WithSpent pairs each budget with the month spending of its category.
// Spending in categories without a budget is ignored.
func WithSpent(budgets []*entity.Budget, spending []entity.CategoryAmount) []entity.BudgetWithSpent {
	byCategory := make(map[string]decimal.Decimal, len(spending))
	for _, c := range spending {
		byCategory[c.Category] = byCategory[c.Category].Add(c.Total)
	}

	result := make([]entity.BudgetWithSpent, 0, len(budgets))
	for _, b := range budgets {
		spent, ok := byCategory[b.Category]
		if !ok {
			spent = decimal.Zero
		}
		result = append(result, entity.BudgetWithSpent{Budget: b, Spent: spent})
	}
	return result
}

// SafeToSpend spreads what is left of the month's total budget over the remaining
// days, today included. The result is rounded to cents.
func SafeToSpend(totalLimit, monthlySpending decimal.Decimal, today time.Time) decimal.Decimal {
	remaining := totalLimit.Sub(monthlySpending)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	days := decimal.NewFromInt(int64(valueobject.DaysRemainingInMonth(today)))
	return remaining.Div(days).Round(2)
}

// SortCategories orders category amounts by total descending, then by name.
func SortCategories(amounts []entity.CategoryAmount) {
	sort.SliceStable(amounts, func(i, j int) bool {
		if c := amounts[i].Total.Cmp(amounts[j].Total); c != 0 {
			return c > 0
		}
		return amounts[i].Category < amounts[j].Category
	})
}

// DailyTrend sums expenses per calendar day in loc, oldest day first.
// Days without spending are omitted.
func DailyTrend(transactions []*entity.Transaction, loc *time.Location) []entity.DailyAmount {
	totals := make(map[time.Time]decimal.Decimal)
	for _, tx := range transactions {
		if tx.Kind != entity.TransactionKindExpense {
			continue
		}
		day := valueobject.StartOfDay(tx.Date.In(loc))
		totals[day] = totals[day].Add(tx.Amount)
	}

	result := make([]entity.DailyAmount, 0, len(totals))
	for day, total := range totals {
		result = append(result, entity.DailyAmount{Day: day, Total: total})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Day.Before(result[j].Day) })
	return result
}
