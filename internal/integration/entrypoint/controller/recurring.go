package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/recurring"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// RecurringController handles subscription endpoints.
type RecurringController struct {
	listUseCase   *recurring.ListRecurringUseCase
	createUseCase *recurring.CreateRecurringUseCase
	deleteUseCase *recurring.DeleteRecurringUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRecurringUseCase,
	createUseCase *recurring.CreateRecurringUseCase,
	deleteUseCase *recurring.DeleteRecurringUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	items := make([]dto.RecurringResponse, len(output.Items))
	for i, item := range output.Items {
		items[i] = dto.ToScheduledRecurringResponse(item.Recurring, item.NextBillingDate)
	}

	ctx.JSON(http.StatusOK, dto.RecurringListResponse{
		Items:        items,
		MonthlyTotal: dto.Money(output.MonthlyTotal),
	})
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateRecurringRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingRecurringFields)) {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRecurringInput{
		UserID:      userID,
		Name:        req.Name,
		Amount:      decimal.NewFromFloat(req.Amount),
		Kind:        entity.TransactionKind(req.Kind),
		BillingDate: req.BillingDate,
		Category:    req.Category,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Recurring))
}

// Delete handles DELETE /recurring/:id requests.
func (c *RecurringController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	recurringID, ok := pathID(ctx, "subscription")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringInput{
		RecurringID: recurringID,
		UserID:      userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
