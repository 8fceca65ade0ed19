package ai

import (
	"context"
	"strings"
	"time"
)

// Served when the upstream call fails mid-conversation. Same policy as
// suggestions: the chat never hard-fails a request.
const chatFallbackText = "Sorry, I couldn't generate a response."

// One turn of the conversation as the client holds it.
type ChatMessage struct {
	Role    string `json:"role" binding:"required,oneof=user ai"`
	Content string `json:"content" binding:"required,max=4000"`
}

type ChatResult struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback"`
}

// BuildChatPrompt renders the history as alternating "User:"/"AI:"
// lines with a trailing "AI:" cue for the model to continue.
func BuildChatPrompt(messages []ChatMessage) string {
	var b strings.Builder

	for _, m := range messages {
		label := "AI"
		if m.Role == "user" {
			label = "User"
		}
		b.WriteString(label + ": " + m.Content + "\n")
	}

	b.WriteString("AI:")

	return b.String()
}

// Chat proxies one conversation turn. Unlike Suggest there is no cache:
// every turn carries new history, so replies are never reusable.
func (s *Service) Chat(ctx context.Context, messages []ChatMessage) ChatResult {
	start := time.Now()

	reply, err := s.gen.Generate(ctx, BuildChatPrompt(messages))

	if err != nil {
		s.observeChat("fallback", start)
		return ChatResult{Reply: chatFallbackText, Fallback: true}
	}

	s.observeChat("ok", start)
	return ChatResult{Reply: strings.TrimSpace(reply)}
}

func (s *Service) observeChat(result string, start time.Time) {
	if s.prom != nil {
		s.prom.ObserveChat(result, time.Since(start))
	}
}
