package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitalmind/vitalmind/internal/ai"
	"github.com/vitalmind/vitalmind/internal/http/middlewares"
)

type Chatter interface {
	Chat(ctx context.Context, messages []ai.ChatMessage) ai.ChatResult
}

type ChatHandler struct {
	chat Chatter
}

func NewChatHandler(chat Chatter) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type ChatRequest struct {
	Messages []ai.ChatMessage `json:"messages" binding:"required,min=1,max=50,dive"`
}

// Chat proxies one conversation turn. Like Generate it never surfaces
// an upstream failure as an error status; the caller always gets a
// reply, flagged fallback when canned.
func (h *ChatHandler) Chat(ctx *gin.Context) {
	if _, ok := middlewares.UserIDFromContext(ctx); !ok {
		RespondUnAuthorized(ctx, "unauthorized", "Authentication required.")
		return
	}

	var req ChatRequest

	if !BindJSON(ctx, &req) {
		return
	}

	result := h.chat.Chat(ctx.Request.Context(), req.Messages)

	ctx.JSON(http.StatusOK, result)
}
