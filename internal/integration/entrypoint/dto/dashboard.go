package dto

import (
	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// CategorySpendingResponse is one category's spend this month.
type CategorySpendingResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// DailySpendingResponse is one day's spend this month.
type DailySpendingResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// DashboardStatsResponse represents the dashboard summary.
type DashboardStatsResponse struct {
	Balances         BalancesResponse           `json:"balances"`
	MonthlySpending  string                     `json:"monthly_spending"`
	CategorySpending []CategorySpendingResponse `json:"category_spending"`
	DailySpending    []DailySpendingResponse    `json:"daily_spending"`
	TotalBudgetLimit string                     `json:"total_budget_limit"`
	DailySafeToSpend string                     `json:"daily_safe_to_spend"`
}

// InsightResponse represents a single insight card.
type InsightResponse struct {
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// InsightListResponse represents the response for listing insights.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// ToDashboardStatsResponse converts dashboard stats to a response DTO.
func ToDashboardStatsResponse(stats entity.DashboardStats) DashboardStatsResponse {
	categories := make([]CategorySpendingResponse, len(stats.CategorySpending))
	for i, c := range stats.CategorySpending {
		categories[i] = CategorySpendingResponse{Category: c.Category, Total: Money(c.Total)}
	}

	days := make([]DailySpendingResponse, len(stats.DailySpending))
	for i, d := range stats.DailySpending {
		days[i] = DailySpendingResponse{Date: d.Day.Format(valueobject.DateLayout), Total: Money(d.Total)}
	}

	return DashboardStatsResponse{
		Balances:         ToBalancesResponse(stats.Balances),
		MonthlySpending:  Money(stats.MonthlySpending),
		CategorySpending: categories,
		DailySpending:    days,
		TotalBudgetLimit: Money(stats.TotalBudgetLimit),
		DailySafeToSpend: Money(stats.DailySafeToSpend),
	}
}

// ToInsightListResponse converts insights to a response DTO.
func ToInsightListResponse(insights []entity.Insight) InsightListResponse {
	out := make([]InsightResponse, len(insights))
	for i, in := range insights {
		out[i] = InsightResponse{
			Type:    string(in.Severity),
			Icon:    in.Icon,
			Title:   in.Title,
			Message: in.Message,
		}
	}
	return InsightListResponse{Insights: out}
}
