package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitalmind/vitalmind/internal/config"
	"github.com/vitalmind/vitalmind/internal/http/middlewares"
	"github.com/vitalmind/vitalmind/internal/insights"
)

// Chart window shown on the dashboard.
const seriesPoints = 7

type InsightsHandler struct {
	repo HealthLogsStore
}

func NewInsightsHandler(repo HealthLogsStore) *InsightsHandler {
	return &InsightsHandler{repo: repo}
}

func (h *InsightsHandler) GetInsights(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Authentication required.")
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	logs, err := h.repo.ListByUser(cctx, userID)

	if err != nil {
		RespondInternal(ctx, "Could not compute insights")
		return
	}

	now := time.Now().UTC()

	ctx.JSON(http.StatusOK, gin.H{
		"summary": insights.BuildSummary(logs, now),
		"series":  insights.Series(logs, seriesPoints),
	})
}
