package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vitalmind/vitalmind/internal/ai"
	"github.com/vitalmind/vitalmind/internal/config"
	"github.com/vitalmind/vitalmind/internal/domain/suggestion"
	"github.com/vitalmind/vitalmind/internal/http/middlewares"
)

type SuggestionsStore interface {
	Create(ctx context.Context, req suggestion.SaveSuggestionRequest) (suggestion.Suggestion, error)
	ListByUser(ctx context.Context, userID string) ([]suggestion.Suggestion, error)
}

type Suggester interface {
	Suggest(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) ai.Result
}

type SuggestionsHandler struct {
	repo      SuggestionsStore
	suggester Suggester
}

func NewSuggestionsHandler(repo SuggestionsStore, suggester Suggester) *SuggestionsHandler {
	return &SuggestionsHandler{
		repo:      repo,
		suggester: suggester,
	}
}

// Generate never returns an error status for upstream trouble; the
// caller always gets usable text, flagged fallback when canned.
func (h *SuggestionsHandler) Generate(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Authentication required.")
		return
	}

	var req suggestion.GenerateRequest

	if !BindJSON(ctx, &req) {
		return
	}

	result := h.suggester.Suggest(ctx.Request.Context(), userID, req, time.Now().UTC())

	ctx.JSON(http.StatusOK, result)
}

func (h *SuggestionsHandler) SaveSuggestion(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Authentication required.")
		return
	}

	var req suggestion.SaveSuggestionRequest

	if !BindJSON(ctx, &req) {
		return
	}

	req.UserID = userID

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	saved, err := h.repo.Create(cctx, req)

	if err != nil {
		RespondInternal(ctx, "Could not save suggestion")
		return
	}

	ctx.JSON(http.StatusCreated, saved)
}

func (h *SuggestionsHandler) ListSuggestions(ctx *gin.Context) {
	userID, ok := middlewares.UserIDFromContext(ctx)
	if !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Authentication required.")
		return
	}

	cctx, cancel := config.WithTimeout(3 * time.Second)
	defer cancel()

	items, err := h.repo.ListByUser(cctx, userID)

	if err != nil {
		RespondInternal(ctx, "Could not list suggestions")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}
