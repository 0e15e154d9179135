package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/budget"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase   *budget.ListBudgetsUseCase
	upsertUseCase *budget.UpsertBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(listUseCase *budget.ListBudgetsUseCase, upsertUseCase *budget.UpsertBudgetUseCase) *BudgetController {
	return &BudgetController{
		listUseCase:   listUseCase,
		upsertUseCase: upsertUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Month.Start, output.Budgets))
}

// Upsert handles POST /budgets requests. It answers 201 when the category had
// no budget yet and 200 when an existing limit was replaced.
func (c *BudgetController) Upsert(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.UpsertBudgetRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingBudgetFields)) {
		return
	}

	output, err := c.upsertUseCase.Execute(ctx.Request.Context(), budget.UpsertBudgetInput{
		UserID:   userID,
		Category: req.Category,
		Limit:    decimal.NewFromFloat(req.Limit),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.ToBudgetResponse(output.Budget))
}
