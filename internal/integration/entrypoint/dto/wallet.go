package dto

import (
	"github.com/pocket-ledger/backend/internal/domain/entity"
)

// WalletTransferRequest represents the request body for moving money between wallets.
type WalletTransferRequest struct {
	From   string  `json:"from" binding:"required,wallet"`
	To     string  `json:"to" binding:"required,wallet,nefield=From"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Date   *string `json:"date,omitempty"`
}

// AdjustBalanceRequest represents the request body for a manual balance correction.
type AdjustBalanceRequest struct {
	TargetBalance *float64 `json:"target_balance" binding:"required"`
}

// BalancesResponse holds both wallet balances and their sum.
type BalancesResponse struct {
	Cash   string `json:"cash"`
	Online string `json:"online"`
	Total  string `json:"total"`
}

// WalletTransferResponse holds the two legs of a wallet transfer.
type WalletTransferResponse struct {
	Debit  TransactionResponse `json:"debit"`
	Credit TransactionResponse `json:"credit"`
}

// AdjustBalanceResponse holds the corrected balance and the correction, if any.
type AdjustBalanceResponse struct {
	Wallet      string               `json:"wallet"`
	Balance     string               `json:"balance"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// ToBalancesResponse converts wallet balances to a BalancesResponse DTO.
func ToBalancesResponse(b entity.WalletBalances) BalancesResponse {
	return BalancesResponse{
		Cash:   Money(b.Cash),
		Online: Money(b.Online),
		Total:  Money(b.Total()),
	}
}
