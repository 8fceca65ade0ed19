package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Generator produces wellness text for a prompt. Keep this small so
// tests can fake it easily.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Returned (as text, not as an error) when the API answers 200 but the
// candidate shape is missing.
const apologyText = "Sorry, no suggestions are available right now."

type GeminiClient struct {
	client  *http.Client
	apiKey  string
	model   string
	baseURL string
}

func NewGeminiClient(apiKey, model string, timeout time.Duration) *GeminiClient {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &GeminiClient{
		client:  &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL points the client at a different endpoint (tests).
func (g *GeminiClient) WithBaseURL(baseURL string) *GeminiClient {
	g.baseURL = strings.TrimRight(baseURL, "/")
	return g
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("gemini: api key not configured")
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})

	if err != nil {
		return "", fmt.Errorf("gemini: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))

	if err != nil {
		return "", fmt.Errorf("gemini: build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)

	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}

	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)

	if err != nil {
		return "", fmt.Errorf("gemini: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface the upstream error body; often {"error":{"message":...}}
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return "", fmt.Errorf("gemini: api error (%d): %s", resp.StatusCode, preview)
	}

	var out generateContentResponse

	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}

	// 200 with no usable candidate is not an outage, so no fallback:
	// the user gets an apology instead of canned tips.
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return apologyText, nil
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)

	if text == "" {
		return apologyText, nil
	}

	return text, nil
}
