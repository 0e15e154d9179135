// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/transaction"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	location      *time.Location
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	location *time.Location,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
		location:      location,
	}
}

// List handles GET /transactions requests.
// Query filters: from, to (inclusive YYYY-MM-DD days), kind, wallet, category.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var filter entity.TransactionFilter

	if fromStr := ctx.Query("from"); fromStr != "" {
		from, err := valueobject.ParseDay(fromStr, c.location)
		if err != nil {
			c.badDate(ctx)
			return
		}
		filter.From = &from
	}
	if toStr := ctx.Query("to"); toStr != "" {
		to, err := valueobject.ParseDay(toStr, c.location)
		if err != nil {
			c.badDate(ctx)
			return
		}
		until := to.AddDate(0, 0, 1)
		filter.Until = &until
	}
	if kindStr := ctx.Query("kind"); kindStr != "" {
		kind := entity.TransactionKind(kindStr)
		filter.Kind = &kind
	}
	if walletStr := ctx.Query("wallet"); walletStr != "" {
		wallet := entity.Wallet(walletStr)
		filter.Wallet = &wallet
	}
	filter.Category = ctx.Query("category")

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{
		UserID: userID,
		Filter: filter,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingTransactionFields)) {
		return
	}

	date, ok := optionalDay(ctx, req.Date, c.location, string(domainerror.ErrCodeInvalidTransactionDate))
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount),
		Kind:        entity.TransactionKind(req.Kind),
		Category:    req.Category,
		Wallet:      entity.Wallet(req.Wallet),
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	transactionID, ok := pathID(ctx, "transaction")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *TransactionController) badDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid date format. Use YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeInvalidTransactionDate),
	})
}
