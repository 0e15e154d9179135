package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pocket-ledger/backend/internal/application/usecase/dashboard"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles dashboard and insight endpoints.
type DashboardController struct {
	statsUseCase    *dashboard.GetStatsUseCase
	insightsUseCase *dashboard.ListInsightsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	statsUseCase *dashboard.GetStatsUseCase,
	insightsUseCase *dashboard.ListInsightsUseCase,
) *DashboardController {
	return &DashboardController{
		statsUseCase:    statsUseCase,
		insightsUseCase: insightsUseCase,
	}
}

// Stats handles GET /dashboard/stats requests.
func (c *DashboardController) Stats(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.statsUseCase.Execute(ctx.Request.Context(), dashboard.GetStatsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardStatsResponse(output.Stats))
}

// Insights handles GET /insights requests.
func (c *DashboardController) Insights(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), dashboard.ListInsightsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}
