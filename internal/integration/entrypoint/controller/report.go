package controller

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/report"
	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/domain/valueobject"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// ReportController handles statement export endpoints.
type ReportController struct {
	exportUseCase *report.ExportTransactionsUseCase
	location      *time.Location
}

// NewReportController creates a new report controller instance.
func NewReportController(exportUseCase *report.ExportTransactionsUseCase, location *time.Location) *ReportController {
	return &ReportController{
		exportUseCase: exportUseCase,
		location:      location,
	}
}

// ExportTransactions handles GET /reports/transactions.csv?from=&to= requests.
// Totals are returned in the X-Total-Spent and X-Total-Income headers.
func (c *ReportController) ExportTransactions(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	from, errFrom := valueobject.ParseDay(ctx.Query("from"), c.location)
	to, errTo := valueobject.ParseDay(ctx.Query("to"), c.location)
	if errFrom != nil || errTo != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "from and to are required as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), report.ExportTransactionsInput{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := output.WriteCSV(&buf); err != nil {
		respondError(ctx, err)
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv", from.Format(valueobject.DateLayout), to.Format(valueobject.DateLayout))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Header("X-Total-Spent", dto.Money(output.TotalSpent))
	ctx.Header("X-Total-Income", dto.Money(output.TotalIncome))
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
