// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Kind        string  `json:"kind" binding:"required,txkind"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Wallet      string  `json:"wallet" binding:"required,wallet"`
	Date        *string `json:"date,omitempty"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Wallet      string    `json:"wallet"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID.String(),
		Amount:      Money(txn.Amount),
		Kind:        string(txn.Kind),
		Category:    txn.Category,
		Wallet:      string(txn.Wallet),
		Date:        txn.Date,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransactionListResponse converts a ledger page to TransactionListResponse.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		out[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{Transactions: out}
}
