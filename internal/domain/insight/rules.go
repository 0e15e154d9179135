package insight

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

var (
	hundred       = decimal.NewFromInt(100)
	criticalPct   = decimal.NewFromInt(90)
	approachPct   = decimal.NewFromInt(75)
	lowSpendPct   = decimal.NewFromInt(30)
	lateMonthFrom = 20
)

// BudgetHealthRule compares total month spending with the sum of all budget limits.
// At most one band fires.
type BudgetHealthRule struct{}

// Name implements Rule.
func (BudgetHealthRule) Name() string { return "budget_health" }

// Evaluate implements Rule.
func (BudgetHealthRule) Evaluate(in Input, _ Options) []entity.Insight {
	totalLimit := decimal.Zero
	for _, b := range in.Budgets {
		totalLimit = totalLimit.Add(b.Limit)
	}
	if totalLimit.IsZero() {
		return nil
	}

	spent := decimal.Zero
	for _, tx := range in.MonthExpenses {
		spent = spent.Add(tx.Amount)
	}

	pct := spent.Div(totalLimit).Mul(hundred)
	shown := pct.Round(0).String()

	switch {
	case pct.GreaterThan(criticalPct):
		return []entity.Insight{{
			Severity: entity.InsightDanger,
			Icon:     "AlertTriangle",
			Title:    "Critical Budget Alert",
			Message:  fmt.Sprintf("You've used %s%% of your monthly budget. Slow down!", shown),
		}}
	case pct.GreaterThan(approachPct):
		return []entity.Insight{{
			Severity: entity.InsightWarning,
			Icon:     "AlertCircle",
			Title:    "Approaching Limit",
			Message:  fmt.Sprintf("You've spent %s%% of your budget. Keep an eye on expenses.", shown),
		}}
	case pct.LessThan(lowSpendPct) && in.Today.Day() > lateMonthFrom:
		return []entity.Insight{{
			Severity: entity.InsightSuccess,
			Icon:     "ThumbsUp",
			Title:    "Great Savings!",
			Message:  fmt.Sprintf("It's late in the month and you've only spent %s%%. You're doing great!", shown),
		}}
	}
	return nil
}

// CategoryOverspendRule flags every budgeted category whose month spending exceeds its limit.
// Categories are reported in the order they first appear in the expenses.
type CategoryOverspendRule struct{}

// Name implements Rule.
func (CategoryOverspendRule) Name() string { return "category_overspend" }

// Evaluate implements Rule.
func (CategoryOverspendRule) Evaluate(in Input, opts Options) []entity.Insight {
	limits := make(map[string]decimal.Decimal, len(in.Budgets))
	for _, b := range in.Budgets {
		limits[b.Category] = b.Limit
	}

	var order []string
	totals := make(map[string]decimal.Decimal)
	for _, tx := range in.MonthExpenses {
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	var insights []entity.Insight
	for _, category := range order {
		limit, ok := limits[category]
		if !ok || !totals[category].GreaterThan(limit) {
			continue
		}
		insights = append(insights, entity.Insight{
			Severity: entity.InsightDanger,
			Icon:     "TrendingUp",
			Title:    "Overspent on " + category,
			Message: fmt.Sprintf("You've exceeded your %s limit by %s.",
				category, money(opts.CurrencySymbol, totals[category].Sub(limit))),
		})
	}
	return insights
}

// HighValueRule flags the first expense above the threshold in ledger order.
type HighValueRule struct{}

// Name implements Rule.
func (HighValueRule) Name() string { return "high_value" }

// Evaluate implements Rule.
func (HighValueRule) Evaluate(in Input, opts Options) []entity.Insight {
	for _, tx := range in.MonthExpenses {
		if !tx.Amount.GreaterThan(opts.HighValueThreshold) {
			continue
		}
		return []entity.Insight{{
			Severity: entity.InsightInfo,
			Icon:     "Info",
			Title:    "Big Purchase Detected",
			Message: fmt.Sprintf("You spent %s on %s recently. Was this planned?",
				money(opts.CurrencySymbol, tx.Amount), tx.Category),
		}}
	}
	return nil
}
