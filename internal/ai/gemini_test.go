package ai_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vitalmind/vitalmind/internal/ai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*ai.GeminiClient, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := ai.NewGeminiClient("test-key", "gemini-1.5-flash", 2*time.Second).WithBaseURL(srv.URL)

	return client, srv
}

func TestGeminiGenerate_Success(t *testing.T) {
	var gotPath string
	var gotBody string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "1. Sleep more\n2. Drink water\n3. Take walks"}]}}
			]
		}`))
	})

	text, err := client.Generate(context.Background(), "advise me")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(text, "1. Sleep more") {
		t.Fatalf("unexpected text: %q", text)
	}

	if gotPath != "/models/gemini-1.5-flash:generateContent" {
		t.Fatalf("unexpected path: %q", gotPath)
	}

	if !strings.Contains(gotBody, `"advise me"`) {
		t.Fatalf("prompt not forwarded, body=%q", gotBody)
	}
}

func TestGeminiGenerate_APIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	})

	_, err := client.Generate(context.Background(), "advise me")

	if err == nil {
		t.Fatal("expected error for non-200 response")
	}

	if !strings.Contains(err.Error(), "429") {
		t.Fatalf("error does not carry status: %v", err)
	}
}

func TestGeminiGenerate_MissingCandidates(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no_candidates", `{"candidates": []}`},
		{"no_parts", `{"candidates": [{"content": {"parts": []}}]}`},
		{"empty_text", `{"candidates": [{"content": {"parts": [{"text": "  "}]}}]}`},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			})

			text, err := client.Generate(context.Background(), "advise me")

			// a malformed 200 is an apology, not an outage
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasPrefix(text, "Sorry") {
				t.Fatalf("expected apology text, got %q", text)
			}
		})
	}
}

func TestGeminiGenerate_NoAPIKey(t *testing.T) {
	client := ai.NewGeminiClient("", "gemini-1.5-flash", time.Second)

	_, err := client.Generate(context.Background(), "advise me")

	if err == nil {
		t.Fatal("expected error when api key is missing")
	}
}
