package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/pocket-ledger/backend/internal/application/usecase/debt"
	"github.com/pocket-ledger/backend/internal/domain/entity"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// DebtController handles debt and bill splitting endpoints.
type DebtController struct {
	listUseCase   *debt.ListDebtsUseCase
	createUseCase *debt.CreateDebtUseCase
	batchUseCase  *debt.BatchCreateDebtsUseCase
	splitUseCase  *debt.SplitBillUseCase
	settleUseCase *debt.SettleDebtUseCase
	deleteUseCase *debt.DeleteDebtUseCase
	location      *time.Location
}

// NewDebtController creates a new debt controller instance.
func NewDebtController(
	listUseCase *debt.ListDebtsUseCase,
	createUseCase *debt.CreateDebtUseCase,
	batchUseCase *debt.BatchCreateDebtsUseCase,
	splitUseCase *debt.SplitBillUseCase,
	settleUseCase *debt.SettleDebtUseCase,
	deleteUseCase *debt.DeleteDebtUseCase,
	location *time.Location,
) *DebtController {
	return &DebtController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		batchUseCase:  batchUseCase,
		splitUseCase:  splitUseCase,
		settleUseCase: settleUseCase,
		deleteUseCase: deleteUseCase,
		location:      location,
	}
}

// List handles GET /debts requests.
func (c *DebtController) List(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), debt.ListDebtsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DebtListResponse{
		Debts:     dto.ToDebtResponses(output.Debts),
		OwedToYou: dto.Money(output.OwedToYou),
		YouOwe:    dto.Money(output.YouOwe),
	})
}

// Create handles POST /debts requests.
func (c *DebtController) Create(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateDebtRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingDebtFields)) {
		return
	}

	entry, ok := c.entry(ctx, req)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), debt.CreateDebtInput{
		UserID: userID,
		Entry:  entry,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToDebtResponse(output.Debt))
}

// BatchCreate handles POST /debts/batch requests. Either every debt is stored or none.
func (c *DebtController) BatchCreate(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.BatchCreateDebtsRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingDebtFields)) {
		return
	}

	entries := make([]debt.DebtEntry, 0, len(req.Debts))
	for _, r := range req.Debts {
		entry, ok := c.entry(ctx, r)
		if !ok {
			return
		}
		entries = append(entries, entry)
	}

	output, err := c.batchUseCase.Execute(ctx.Request.Context(), debt.BatchCreateDebtsInput{
		UserID:  userID,
		Entries: entries,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"debts": dto.ToDebtResponses(output.Debts)})
}

// Split handles POST /debts/split requests.
func (c *DebtController) Split(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var req dto.SplitBillRequest
	if !bindJSON(ctx, &req, string(domainerror.ErrCodeMissingDebtFields)) {
		return
	}

	date, ok := optionalDay(ctx, req.Date, c.location, string(domainerror.ErrCodeMissingDebtFields))
	if !ok {
		return
	}

	output, err := c.splitUseCase.Execute(ctx.Request.Context(), debt.SplitBillInput{
		UserID:       userID,
		Total:        decimal.NewFromFloat(req.Total),
		Participants: req.Participants,
		Date:         date,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SplitBillResponse{
		Share: dto.Money(output.Share),
		Debts: dto.ToDebtResponses(output.Debts),
	})
}

// Settle handles PATCH /debts/:id/settle requests. Settling twice is not an error.
func (c *DebtController) Settle(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	debtID, ok := pathID(ctx, "debt")
	if !ok {
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), debt.SettleDebtInput{
		DebtID: debtID,
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDebtResponse(output.Debt))
}

// Delete handles DELETE /debts/:id requests.
func (c *DebtController) Delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	debtID, ok := pathID(ctx, "debt")
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), debt.DeleteDebtInput{
		DebtID: debtID,
		UserID: userID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *DebtController) entry(ctx *gin.Context, req dto.CreateDebtRequest) (debt.DebtEntry, bool) {
	date, ok := optionalDay(ctx, req.Date, c.location, string(domainerror.ErrCodeMissingDebtFields))
	if !ok {
		return debt.DebtEntry{}, false
	}
	return debt.DebtEntry{
		Person:    req.Person,
		Amount:    decimal.NewFromFloat(req.Amount),
		Direction: entity.DebtDirection(req.Direction),
		Date:      date,
	}, true
}
