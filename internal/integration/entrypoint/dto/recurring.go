package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
)

// CreateRecurringRequest represents the request body for adding a subscription.
type CreateRecurringRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Kind        string  `json:"kind" binding:"required,txkind"`
	BillingDate int     `json:"billing_date" binding:"required,min=1,max=31"`
	Category    string  `json:"category,omitempty" binding:"omitempty,max=100"`
}

// RecurringResponse represents a subscription in API responses.
type RecurringResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Amount          string    `json:"amount"`
	Kind            string    `json:"kind"`
	BillingDate     int       `json:"billing_date"`
	Category        string    `json:"category"`
	NextBillingDate string    `json:"next_billing_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// RecurringListResponse represents the response for listing subscriptions.
type RecurringListResponse struct {
	Items        []RecurringResponse `json:"items"`
	MonthlyTotal string              `json:"monthly_total"`
}

// ToRecurringResponse converts a domain Recurring to a RecurringResponse DTO.
func ToRecurringResponse(r *entity.Recurring) RecurringResponse {
	return RecurringResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Amount:      Money(r.Amount),
		Kind:        string(r.Kind),
		BillingDate: r.BillingDate,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
	}
}

// ToScheduledRecurringResponse also renders the next billing date.
func ToScheduledRecurringResponse(r *entity.Recurring, next time.Time) RecurringResponse {
	resp := ToRecurringResponse(r)
	resp.NextBillingDate = next.Format(valueobject.DateLayout)
	return resp
}
