package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitalmind/vitalmind/internal/cache"
	"github.com/vitalmind/vitalmind/internal/config"
	"github.com/vitalmind/vitalmind/internal/domain/healthlog"
	"github.com/vitalmind/vitalmind/internal/http/middlewares"
)

type HealthLogsStore interface {
	Create(ctx context.Context, req healthlog.CreateLogRequest) (healthlog.HealthLog, error)
	ListByUser(ctx context.Context, userID string) ([]healthlog.HealthLog, error)
}

type HealthLogsHandler struct {
	repo  HealthLogsStore
	cache *cache.Cache
}

func NewHealthLogsHandler(repo HealthLogsStore, listCache *cache.Cache) *HealthLogsHandler {
	return &HealthLogsHandler{
		repo:  repo,
		cache: listCache,
	}
}

func (h *HealthLogsHandler) CreateLog(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Authentication required.")
		return
	}

	var req healthlog.CreateLogRequest

	if !BindJSON(ctx, &req) {
		return
	}

	req.UserID = userID

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	created, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not save log")
		return
	}

	// new entry invalidates the cached list for this user only
	if h.cache != nil {
		h.cache.Delete(logListCacheKey(userID))
	}

	ctx.JSON(http.StatusCreated, created)
}

func (h *HealthLogsHandler) ListLogs(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Authentication required.")
		return
	}

	if h.cache != nil {
		if v, hit := h.cache.Get(logListCacheKey(userID)); hit {
			if logs, ok := v.([]healthlog.HealthLog); ok {
				RespondJSONWithETag(ctx, http.StatusOK, gin.H{
					"items": logs,
					"count": len(logs),
				})
				return
			}
		}
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	logs, err := h.repo.ListByUser(cctx, userID)

	if err != nil {
		RespondInternal(ctx, "Could not list logs")
		return
	}

	if h.cache != nil {
		h.cache.Set(logListCacheKey(userID), logs)
	}

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"items": logs,
		"count": len(logs),
	})
}

func logListCacheKey(userID string) string {
	return "logs:" + userID
}
