package insight

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

var userID = uuid.MustParse("0190a1b2-0000-7000-8000-000000000002")

func expense(amount int64, category string) *entity.Transaction {
	return entity.NewTransaction(userID, decimal.NewFromInt(amount), entity.TransactionKindExpense,
		category, entity.WalletCash, time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC), "")
}

func budget(category string, limit int64) *entity.Budget {
	return entity.NewBudget(userID, category, decimal.NewFromInt(limit))
}

func onDay(d int) time.Time {
	return time.Date(2026, time.October, d, 10, 0, 0, 0, time.UTC)
}

func titles(insights []entity.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, i := range insights {
		out = append(out, i.Title)
	}
	return out
}

func TestGenerate_BudgetBands(t *testing.T) {
	tests := []struct {
		name     string
		spent    int64
		day      int
		want     string
		severity entity.InsightSeverity
	}{
		{"above 90 percent", 950, 10, "Critical Budget Alert", entity.InsightDanger},
		{"exactly 90 percent is a warning", 900, 10, "Approaching Limit", entity.InsightWarning},
		{"between 75 and 90", 800, 10, "Approaching Limit", entity.InsightWarning},
		{"low spend late in month", 200, 25, "Great Savings!", entity.InsightSuccess},
		{"low spend early in month falls back", 200, 15, "Financial Health", entity.InsightNeutral},
		{"exactly 75 percent falls back", 750, 10, "Financial Health", entity.InsightNeutral},
	}

	engine := NewEngine(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Generate(Input{
				Today:         onDay(tt.day),
				MonthExpenses: []*entity.Transaction{expense(tt.spent, "Misc")},
				Budgets:       []*entity.Budget{budget("Food", 1000)},
			})

			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Title)
			assert.Equal(t, tt.severity, got[0].Severity)
		})
	}
}

func TestGenerate_FoodNearLimit(t *testing.T) {
	engine := NewEngine(Options{})

	got := engine.Generate(Input{
		Today:         onDay(12),
		MonthExpenses: []*entity.Transaction{expense(600, "Food"), expense(350, "Food")},
		Budgets:       []*entity.Budget{budget("Food", 1000)},
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Critical Budget Alert", got[0].Title)
	assert.Equal(t, "You've used 95% of your monthly budget. Slow down!", got[0].Message)
}

func TestGenerate_OrderAndOverspend(t *testing.T) {
	engine := NewEngine(Options{})

	got := engine.Generate(Input{
		Today: onDay(12),
		MonthExpenses: []*entity.Transaction{
			expense(300, "Travel"),
			expense(7000, "Rent"),
			expense(1200, "Food"),
			expense(6000, "Gadgets"),
		},
		Budgets: []*entity.Budget{budget("Food", 1000), budget("Travel", 200), budget("Rent", 8000)},
	})

	assert.Equal(t, []string{
		"Critical Budget Alert",
		"Overspent on Travel",
		"Overspent on Food",
		"Big Purchase Detected",
	}, titles(got))
	assert.Equal(t, "You've exceeded your Travel limit by ₹100.00.", got[1].Message)
	assert.Equal(t, "You spent ₹7000.00 on Rent recently. Was this planned?", got[3].Message)
}

func TestGenerate_NoBudgets(t *testing.T) {
	engine := NewEngine(Options{CurrencySymbol: "$", HighValueThreshold: decimal.NewFromInt(100)})

	t.Run("high value still fires without budgets", func(t *testing.T) {
		got := engine.Generate(Input{Today: onDay(2), MonthExpenses: []*entity.Transaction{expense(150, "Shoes")}})

		require.Len(t, got, 1)
		assert.Equal(t, entity.InsightInfo, got[0].Severity)
		assert.Equal(t, "You spent $150.00 on Shoes recently. Was this planned?", got[0].Message)
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		got := engine.Generate(Input{Today: onDay(2), MonthExpenses: []*entity.Transaction{expense(100, "Shoes")}})

		assert.Equal(t, []string{"Financial Health"}, titles(got))
	})

	t.Run("empty ledger falls back", func(t *testing.T) {
		got := engine.Generate(Input{Today: onDay(2)})

		require.Len(t, got, 1)
		assert.Equal(t, entity.InsightNeutral, got[0].Severity)
	})
}

func TestGenerate_Idempotent(t *testing.T) {
	engine := NewEngine(Options{})
	in := Input{
		Today:         onDay(28),
		MonthExpenses: []*entity.Transaction{expense(100, "Food"), expense(5500, "Laptop")},
		Budgets:       []*entity.Budget{budget("Food", 1000), budget("Fun", 6000)},
	}

	first := engine.Generate(in)
	second := engine.Generate(in)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"Approaching Limit", "Big Purchase Detected"}, titles(first))
}

type countingRule struct{ calls *int }

func (countingRule) Name() string { return "counting" }

func (r countingRule) Evaluate(Input, Options) []entity.Insight {
	*r.calls++
	return nil
}

func TestNewEngineWithRules(t *testing.T) {
	calls := 0
	engine := NewEngineWithRules(Options{}, countingRule{calls: &calls})

	got := engine.Generate(Input{Today: onDay(1)})

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"Financial Health"}, titles(got))
}

func TestGenerate_LogsFiredRuleNames(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })

	NewEngine(Options{}).Generate(Input{
		Today:         onDay(28),
		MonthExpenses: []*entity.Transaction{expense(5500, "Laptop")},
	})

	assert.Contains(t, buf.String(), "rule=high_value")
	assert.NotContains(t, buf.String(), "rule=budget_health")
}
