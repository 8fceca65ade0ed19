package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vitalmind/vitalmind/internal/ai"
	"github.com/vitalmind/vitalmind/internal/domain/suggestion"
	"github.com/vitalmind/vitalmind/internal/http/handlers"
)

type fakeSuggestionsRepo struct {
	createFn func(ctx context.Context, req suggestion.SaveSuggestionRequest) (suggestion.Suggestion, error)
	listFn   func(ctx context.Context, userID string) ([]suggestion.Suggestion, error)
}

func (f *fakeSuggestionsRepo) Create(ctx context.Context, req suggestion.SaveSuggestionRequest) (suggestion.Suggestion, error) {
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}

	return suggestion.Suggestion{}, nil
}

func (f *fakeSuggestionsRepo) ListByUser(ctx context.Context, userID string) ([]suggestion.Suggestion, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}

	return nil, nil
}

type fakeSuggester struct {
	suggestFn func(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) ai.Result
}

func (f *fakeSuggester) Suggest(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) ai.Result {
	if f.suggestFn != nil {
		return f.suggestFn(ctx, userID, req, now)
	}

	return ai.Result{Text: "1. a\n2. b\n3. c"}
}

func TestGenerateSuggestionHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		suggestFn      func(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) ai.Result
		wantStatusCode int
		wantFallback   bool
	}{
		{
			name: "success",
			body: `{"sleepHours": 7, "waterIntake": 2, "mood": "Happy"}`,
			suggestFn: func(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) ai.Result {
				if userID != testUserID {
					t.Errorf("wrong user id: %s", userID)
				}
				return ai.Result{Text: "1. Keep it up\n2. Stretch daily\n3. Eat greens"}
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "empty_metrics_still_ok",
			body: `{}`,
			suggestFn: func(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) ai.Result {
				return ai.Result{Text: "1. a\n2. b\n3. c"}
			},
			wantStatusCode: http.StatusOK,
		},
		{
			// the proxy degrades to canned tips, the status stays 200
			name: "upstream_down_returns_fallback",
			body: `{"sleepHours": 7}`,
			suggestFn: func(ctx context.Context, userID string, req suggestion.GenerateRequest, now time.Time) ai.Result {
				return ai.Result{Text: ai.FallbackText(), Fallback: true}
			},
			wantStatusCode: http.StatusOK,
			wantFallback:   true,
		},
		{
			name:           "sleep_out_of_range",
			body:           `{"sleepHours": 30}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			h := handlers.NewSuggestionsHandler(&fakeSuggestionsRepo{}, &fakeSuggester{suggestFn: tt.suggestFn})

			r := setupAuthedRouter(http.MethodPost, "/suggestions/generate", h.Generate)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodPost, "/suggestions/generate", tt.body))

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var resp struct {
					Suggestion string `json:"suggestion"`
					Fallback   bool   `json:"fallback"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to unmarshal response: %v", err)
				}
				if resp.Suggestion == "" {
					t.Fatal("expected non-empty suggestion text")
				}
				if resp.Fallback != tt.wantFallback {
					t.Fatalf("got fallback=%v, want %v", resp.Fallback, tt.wantFallback)
				}
			}
		})
	}
}

func TestSaveSuggestionHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		body           string
		repoSetup      func(*fakeSuggestionsRepo)
		wantStatusCode int
	}{
		{
			name: "success",
			body: `{"week": "2026-W35", "suggestionText": "1. a\n2. b\n3. c"}`,
			repoSetup: func(f *fakeSuggestionsRepo) {
				f.createFn = func(ctx context.Context, req suggestion.SaveSuggestionRequest) (suggestion.Suggestion, error) {
					if req.UserID != testUserID {
						return suggestion.Suggestion{}, errors.New("wrong user id: " + req.UserID)
					}

					return suggestion.Suggestion{
						ID:        uuid.NewString(),
						UserID:    req.UserID,
						Week:      req.Week,
						Text:      req.Text,
						CreatedAt: now,
						UpdatedAt: now,
					}, nil
				}
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "missing_text",
			body: `{"week": "2026-W35"}`,
			repoSetup: func(f *fakeSuggestionsRepo) {
				// invalid payload, the repo should not be called
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "missing_week",
			body:           `{"suggestionText": "1. a"}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "repo_error",
			body: `{"week": "2026-W35", "suggestionText": "1. a"}`,
			repoSetup: func(f *fakeSuggestionsRepo) {
				f.createFn = func(ctx context.Context, req suggestion.SaveSuggestionRequest) (suggestion.Suggestion, error) {
					return suggestion.Suggestion{}, errors.New("db error")
				}
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			fakeRepo := &fakeSuggestionsRepo{}

			if tt.repoSetup != nil {
				tt.repoSetup(fakeRepo)
			}

			h := handlers.NewSuggestionsHandler(fakeRepo, &fakeSuggester{})

			r := setupAuthedRouter(http.MethodPost, "/suggestions", h.SaveSuggestion)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, authedRequest(http.MethodPost, "/suggestions", tt.body))

			if w.Code != tt.wantStatusCode {
				t.Fatalf("got status %d, want %d, body=%s", w.Code, tt.wantStatusCode, w.Body.String())
			}
		})
	}
}

func TestListSuggestionsHandler(t *testing.T) {
	now := time.Now().UTC()

	fakeRepo := &fakeSuggestionsRepo{}
	fakeRepo.listFn = func(ctx context.Context, userID string) ([]suggestion.Suggestion, error) {
		if userID != testUserID {
			return nil, errors.New("wrong user id: " + userID)
		}

		return []suggestion.Suggestion{
			{ID: "s-1", UserID: userID, Week: "2026-W35", Text: "1. a", CreatedAt: now, UpdatedAt: now},
		}, nil
	}

	h := handlers.NewSuggestionsHandler(fakeRepo, &fakeSuggester{})
	r := setupAuthedRouter(http.MethodGet, "/suggestions", h.ListSuggestions)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, authedRequest(http.MethodGet, "/suggestions", ""))

	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("got count %d, want 1", resp.Count)
	}
}
