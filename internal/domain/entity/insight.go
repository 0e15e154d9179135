// Package entity defines the core business entities for the domain layer.
package entity

// InsightSeverity drives how an insight is presented.
type InsightSeverity string

const (
	InsightDanger  InsightSeverity = "danger"
	InsightWarning InsightSeverity = "warning"
	InsightSuccess InsightSeverity = "success"
	InsightInfo    InsightSeverity = "info"
	InsightNeutral InsightSeverity = "neutral"
)

// Insight is an advisory message derived from the ledger.
type Insight struct {
	Severity InsightSeverity
	Icon     string
	Title    string
	Message  string
}
