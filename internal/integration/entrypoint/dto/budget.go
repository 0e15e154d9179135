package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// UpsertBudgetRequest represents the request body for setting a category limit.
type UpsertBudgetRequest struct {
	Category string  `json:"category" binding:"required,min=1,max=100"`
	Limit    float64 `json:"limit" binding:"required,gt=0"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Limit     string    `json:"limit"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BudgetWithSpentResponse is a budget with its current-month spend.
type BudgetWithSpentResponse struct {
	BudgetResponse
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Month   string                    `json:"month"`
	Budgets []BudgetWithSpentResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain Budget to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:        b.ID.String(),
		Category:  b.Category,
		Limit:     Money(b.Limit),
		UpdatedAt: b.UpdatedAt,
	}
}

// ToBudgetListResponse converts budgets with spend to a BudgetListResponse DTO.
func ToBudgetListResponse(month time.Time, budgets []entity.BudgetWithSpent) BudgetListResponse {
	out := make([]BudgetWithSpentResponse, len(budgets))
	for i, b := range budgets {
		out[i] = BudgetWithSpentResponse{
			BudgetResponse: ToBudgetResponse(b.Budget),
			Spent:          Money(b.Spent),
			Remaining:      Money(b.Remaining()),
		}
	}
	return BudgetListResponse{
		Month:   month.Format("2006-01"),
		Budgets: out,
	}
}
