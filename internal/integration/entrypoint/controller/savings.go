package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/savings"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// SavingsController handles savings jar endpoints.
type SavingsController struct {
	listUseCase     *savings.ListJarsUseCase
	createUseCase   *savings.CreateJarUseCase
	transferUseCase *savings.TransferJarUseCase
	deleteUseCase   *savings.DeleteJarUseCase
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	listUseCase *savings.ListJarsUseCase,
	createUseCase *savings.CreateJarUseCase,
	transferUseCase *savings.TransferJarUseCase,
	deleteUseCase *savings.DeleteJarUseCase,
) *SavingsController {
	return &SavingsController{
		listUseCase:     listUseCase,
		createUseCase:   createUseCase,
		transferUseCase: transferUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// List handles GET /savings requests.
func (c *SavingsController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), savings.ListJarsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJarListResponse(output.Jars))
}

// Create handles POST /savings requests.
func (c *SavingsController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateJarRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingJarFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), savings.CreateJarInput{
		UserID:       userID,
		Name:         req.Name,
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		Emoji:        req.Emoji,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToJarResponse(output.Jar))
}

// Transfer handles PATCH /savings/:id/transfer requests.
func (c *SavingsController) Transfer(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	jarID, ok := pathID(ctx, "jar")
	if !ok {
		return
	}

	var req dto.TransferJarRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingJarFields)) {
		return
	}

	output, err := c.transferUseCase.Execute(ctx.Request.Context(), savings.TransferJarInput{
		JarID:  jarID,
		UserID: userID,
		Amount: decimal.NewFromFloat(req.Amount),
		Wallet: entity.Wallet(req.Wallet),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JarTransferResponse{
		Jar:         dto.ToJarResponse(output.Jar),
		Transaction: dto.ToTransactionResponse(output.Transaction),
	})
}

// Delete handles DELETE /savings/:id requests.
func (c *SavingsController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	jarID, ok := pathID(ctx, "jar")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), savings.DeleteJarInput{
		JarID:  jarID,
		UserID: userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
