package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateJarRequest represents the request body for creating a savings jar.
type CreateJarRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount float64 `json:"target_amount" binding:"required,gt=0"`
	Emoji        string  `json:"emoji,omitempty" binding:"omitempty,max=16"`
}

// TransferJarRequest moves money into (positive) or out of (negative) a jar.
type TransferJarRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Wallet string  `json:"wallet,omitempty" binding:"omitempty,wallet"`
}

// JarResponse represents a savings jar in API responses.
type JarResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  string    `json:"target_amount"`
	CurrentAmount string    `json:"current_amount"`
	Progress      string    `json:"progress"`
	Emoji         string    `json:"emoji"`
	CreatedAt     time.Time `json:"created_at"`
}

// JarListResponse represents the response for listing jars.
type JarListResponse struct {
	Jars []JarResponse `json:"jars"`
}

// JarTransferResponse holds the updated jar and its mirrored ledger entry.
type JarTransferResponse struct {
	Jar         JarResponse         `json:"jar"`
	Transaction TransactionResponse `json:"transaction"`
}

// ToJarResponse converts a domain SavingsJar to a JarResponse DTO.
func ToJarResponse(j *entity.SavingsJar) JarResponse {
	return JarResponse{
		ID:            j.ID.String(),
		Name:          j.Name,
		TargetAmount:  Money(j.TargetAmount),
		CurrentAmount: Money(j.CurrentAmount),
		Progress:      Money(j.Progress()),
		Emoji:         j.Emoji,
		CreatedAt:     j.CreatedAt,
	}
}

// ToJarListResponse converts jars to a JarListResponse DTO.
func ToJarListResponse(jars []*entity.SavingsJar) JarListResponse {
	out := make([]JarResponse, len(jars))
	for i, j := range jars {
		out[i] = ToJarResponse(j)
	}
	return JarListResponse{Jars: out}
}
