package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateDebtRequest represents the request body for recording a debt.
type CreateDebtRequest struct {
	Person    string  `json:"person" binding:"required,min=1,max=100"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Direction string  `json:"direction" binding:"required,debtdirection"`
	Date      *string `json:"date,omitempty"`
}

// BatchCreateDebtsRequest records several debts at once.
type BatchCreateDebtsRequest struct {
	Debts []CreateDebtRequest `json:"debts" binding:"required,min=1,dive"`
}

// SplitBillRequest splits a bill equally between the caller and the participants.
type SplitBillRequest struct {
	Total        float64  `json:"total" binding:"required,gt=0"`
	Participants []string `json:"participants" binding:"required,min=1,dive,required"`
	Date         *string  `json:"date,omitempty"`
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID        string    `json:"id"`
	Person    string    `json:"person"`
	Amount    string    `json:"amount"`
	Direction string    `json:"direction"`
	Status    string    `json:"status"`
	Date      time.Time `json:"date"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts     []DebtResponse `json:"debts"`
	OwedToYou string         `json:"owed_to_you"`
	YouOwe    string         `json:"you_owe"`
}

// SplitBillResponse holds the per-person share and the debts created.
type SplitBillResponse struct {
	Share string         `json:"share"`
	Debts []DebtResponse `json:"debts"`
}

// ToDebtResponse converts a domain Debt to a DebtResponse DTO.
func ToDebtResponse(d *entity.Debt) DebtResponse {
	return DebtResponse{
		ID:        d.ID.String(),
		Person:    d.Person,
		Amount:    Money(d.Amount),
		Direction: string(d.Direction),
		Status:    string(d.Status),
		Date:      d.Date,
	}
}

// ToDebtResponses converts debts to DebtResponse DTOs.
func ToDebtResponses(debts []*entity.Debt) []DebtResponse {
	out := make([]DebtResponse, len(debts))
	for i, d := range debts {
		out[i] = ToDebtResponse(d)
	}
	return out
}
