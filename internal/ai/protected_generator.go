package ai

import (
	"context"
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker open")

type ProtectedGeneratorConfig struct {
	Timeout          time.Duration // hard timeout per call
	FailureThreshold int           // consecutive failures to open circuit
	Cooldown         time.Duration // how long to stay open before half-open
	HalfOpenMaxCalls int           // allow N trial calls in half-open
}

// ProtectedGenerator wraps a Generator with a circuit breaker so a dead
// upstream fails fast instead of tying up request handlers for the full
// timeout on every call.
type ProtectedGenerator struct {
	inner Generator
	cfg   ProtectedGeneratorConfig
	mu    sync.Mutex

	state string // "closed" | "open" | "half_open"

	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
}

func NewProtectedGenerator(inner Generator, cfg ProtectedGeneratorConfig) *ProtectedGenerator {
	//defaults
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.FailureThreshold <= 0 {
		cfg.FailureThreshold = 3
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 30 * time.Second
	}
	if cfg.HalfOpenMaxCalls <= 0 {
		cfg.HalfOpenMaxCalls = 1
	}

	return &ProtectedGenerator{
		inner: inner,
		cfg:   cfg,
		state: "closed",
	}
}

func (g *ProtectedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	// fail-fast gate

	if !g.allowRequest() {
		return "", ErrCircuitOpen
	}
	// enforce timeout

	callCtx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	text, err := g.inner.Generate(callCtx, prompt)

	g.afterRequest(err)

	return text, err
}

func (g *ProtectedGenerator) allowRequest() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.state {
	case "closed":
		return true
	case "open":
		// cooldown has passed? move to half open

		if time.Since(g.openedAt) >= g.cfg.Cooldown {
			g.state = "half_open"
			g.halfOpenInFlight = 0
			return true
		}
		return false
	case "half_open":
		if g.halfOpenInFlight >= g.cfg.HalfOpenMaxCalls {
			return false
		}
		g.halfOpenInFlight++
		return true

	default:
		// safe fallback
		return true
	}

}

func (g *ProtectedGenerator) afterRequest(err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// half-open call just finished
	if g.state == "half_open" && g.halfOpenInFlight > 0 {
		g.halfOpenInFlight--
	}

	if err == nil {
		// success => close circuit and reset counters
		g.consecutiveFailures = 0
		g.state = "closed"
		return
	}

	// failure
	g.consecutiveFailures++

	// if half-open failed, reopen immediately
	if g.state == "half_open" {
		g.state = "open"
		g.openedAt = time.Now()
		return
	}

	// if failures reached threshold, open circuit
	if g.consecutiveFailures >= g.cfg.FailureThreshold {
		g.state = "open"
		g.openedAt = time.Now()
	}
}
