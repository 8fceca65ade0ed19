package ai

import (
	"context"
	"time"

	"github.com/vitalmind/vitalmind/internal/domain/suggestion"
	"github.com/vitalmind/vitalmind/internal/observability"
)

// Output lines kept per suggestion; the prompt asks for exactly 3.
const maxSuggestionLines = 3

// SuggestionCache is satisfied by redisclient.Client and by the
// in-process adapter below, so Redis stays optional.
type SuggestionCache interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, val string, ttl time.Duration) error
}

type Result struct {
	Text     string `json:"suggestion"`
	Fallback bool   `json:"fallback"`
}

// Service is the suggestion proxy: prompt, upstream call, truncation,
// fallback, and a day-scoped cache so the rate-limited API is hit at
// most once per user per day.
type Service struct {
	gen      Generator
	cache    SuggestionCache
	prom     *observability.Prom
	cacheTTL time.Duration
}

func NewService(gen Generator, cache SuggestionCache, prom *observability.Prom) *Service {
	return &Service{
		gen:      gen,
		cache:    cache,
		prom:     prom,
		cacheTTL: 24 * time.Hour,
	}
}

func (s *Service) Suggest(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) Result {
	start := time.Now()
	key := "suggestion:" + userID + ":" + now.Format("2006-01-02")

	if s.cache != nil {
		// cache errors count as misses; the proxy never fails a request
		cached, ok, err := s.cache.GetString(ctx, key)

		if err == nil && ok && cached != "" {
			s.observe("cache_hit", start)
			return Result{Text: cached}
		}
	}

	text, err := s.gen.Generate(ctx, BuildPrompt(req))

	if err != nil {
		// unreachable upstream, timeout, or open circuit: canned tips,
		// flagged as non-personalized, never an error to the caller
		s.observe("fallback", start)
		return Result{Text: FallbackText(), Fallback: true}
	}

	text = TrimSuggestion(text, maxSuggestionLines)

	if s.cache != nil {
		_ = s.cache.SetString(ctx, key, text, s.cacheTTL)
	}

	s.observe("ok", start)
	return Result{Text: text}
}

func (s *Service) observe(result string, start time.Time) {
	if s.prom != nil {
		s.prom.ObserveSuggestion(result, time.Since(start))
	}
}
