// Package insight turns month aggregates into an ordered list of advisory messages.
package insight

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// DefaultHighValueThreshold is the expense amount above which a purchase is flagged.
var DefaultHighValueThreshold = decimal.NewFromInt(5000)

// DefaultCurrencySymbol prefixes amounts in insight messages.
const DefaultCurrencySymbol = "₹"

// Input is the ledger state a rule looks at.
type Input struct {
	Today time.Time
	// MonthExpenses holds the current month's expenses in ledger order (newest first).
	MonthExpenses []*entity.Transaction
	Budgets       []*entity.Budget
}

// Options tunes rule thresholds and message formatting.
type Options struct {
	HighValueThreshold decimal.Decimal
	CurrencySymbol     string
}

// Rule is one typed insight rule. A rule may emit zero or more insights.
type Rule interface {
	Name() string
	Evaluate(in Input, opts Options) []entity.Insight
}

// DefaultRules returns the rules in the order their insights are presented.
func DefaultRules() []Rule {
	return []Rule{
		BudgetHealthRule{},
		CategoryOverspendRule{},
		HighValueRule{},
	}
}

// Engine evaluates an ordered rule list.
type Engine struct {
	rules []Rule
	opts  Options
}

// NewEngine creates an Engine running the default rules.
func NewEngine(opts Options) *Engine {
	return NewEngineWithRules(opts, DefaultRules()...)
}

// NewEngineWithRules creates an Engine running the given rules in order.
func NewEngineWithRules(opts Options, rules ...Rule) *Engine {
	if opts.HighValueThreshold.IsZero() {
		opts.HighValueThreshold = DefaultHighValueThreshold
	}
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = DefaultCurrencySymbol
	}
	return &Engine{rules: rules, opts: opts}
}

// Generate runs every rule and concatenates their output in rule order.
// When nothing fires it returns the single neutral fallback.
func (e *Engine) Generate(in Input) []entity.Insight {
	insights := make([]entity.Insight, 0, len(e.rules))
	for _, rule := range e.rules {
		fired := rule.Evaluate(in, e.opts)
		if len(fired) > 0 {
			slog.Debug("Insight rule fired", "rule", rule.Name(), "insights", len(fired))
		}
		insights = append(insights, fired...)
	}

	if len(insights) == 0 {
		insights = append(insights, stable())
	}
	return insights
}

func stable() entity.Insight {
	return entity.Insight{
		Severity: entity.InsightNeutral,
		Icon:     "Sparkles",
		Title:    "Financial Health",
		Message:  "Your spending looks stable right now. Keep tracking!",
	}
}

func money(symbol string, amount decimal.Decimal) string {
	return symbol + amount.StringFixed(2)
}
