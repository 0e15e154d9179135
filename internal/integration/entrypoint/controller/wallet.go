package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/wallet"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// WalletController handles wallet balance endpoints.
type WalletController struct {
	balancesUseCase *wallet.GetBalancesUseCase
	transferUseCase *wallet.TransferUseCase
	adjustUseCase   *wallet.AdjustBalanceUseCase
	location        *time.Location
}

// NewWalletController creates a new wallet controller instance.
func NewWalletController(
	balancesUseCase *wallet.GetBalancesUseCase,
	transferUseCase *wallet.TransferUseCase,
	adjustUseCase *wallet.AdjustBalanceUseCase,
	location *time.Location,
) *WalletController {
	return &WalletController{
		balancesUseCase: balancesUseCase,
		transferUseCase: transferUseCase,
		adjustUseCase:   adjustUseCase,
		location:        location,
	}
}

// Balances handles GET /wallets requests.
func (c *WalletController) Balances(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.balancesUseCase.Execute(ctx.Request.Context(), wallet.GetBalancesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalancesResponse(output.Balances))
}

// Transfer handles POST /wallets/transfer requests.
func (c *WalletController) Transfer(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.WalletTransferRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingTransactionFields)) {
		return
	}

	date, ok := optionalDay(ctx, req.Date, c.location, string(domainerror.ErrCodeInvalidTransactionDate))
	if !ok {
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), wallet.TransferInput{
		UserID: userID,
		From:   entity.Wallet(req.From),
		To:     entity.Wallet(req.To),
		Amount: decimal.NewFromFloat(req.Amount),
		Date:   date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.WalletTransferResponse{
		Debit:  dto.ToTransactionResponse(output.Debit),
		Credit: dto.ToTransactionResponse(output.Credit),
	})
}

// Adjust handles POST /wallets/:wallet/adjust requests.
func (c *WalletController) Adjust(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.AdjustBalanceRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingTransactionFields)) {
		return
	}

	w := entity.Wallet(ctx.Param("wallet"))
	output, err := c.adjustUseCase.Execute(ctx.Request.Context(), wallet.AdjustBalanceInput{
		UserID:        userID,
		Wallet:        w,
		TargetBalance: decimal.NewFromFloat(*req.TargetBalance),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.AdjustBalanceResponse{
		Wallet:  string(w),
		Balance: dto.Money(output.Balance),
	}
	if output.Transaction != nil {
		txn := dto.ToTransactionResponse(output.Transaction)
		response.Transaction = &txn
	}
	ctx.JSON(http.StatusOK, response)
}
