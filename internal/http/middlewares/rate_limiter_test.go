package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func limitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.GET("/ping", rl.RateLimiterMiddleware(KeyByIP), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doPing(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = ip + ":12345"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	r := limitedRouter(rl)

	for i := 0; i < 2; i++ {
		if w := doPing(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Fatalf("request %d: got status %d", i+1, w.Code)
		}
	}

	w := doPing(r, "10.0.0.1")

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want 429", w.Code)
	}

	if w.Header().Get("Retry-After") == "" {
		t.Fatal("missing Retry-After header")
	}

	// a different client has its own bucket
	if w := doPing(r, "10.0.0.2"); w.Code != http.StatusOK {
		t.Fatalf("second client got status %d", w.Code)
	}
}

func TestRateLimiter_SweepsExpiredBuckets(t *testing.T) {
	rl := NewRateLimiter(5, 10*time.Millisecond)
	r := limitedRouter(rl)

	for i := 0; i < 20; i++ {
		doPing(r, "10.0.1."+string(rune('0'+i%10)))
	}

	time.Sleep(20 * time.Millisecond)

	// this request lands after every window above has expired, so the
	// sweep must leave only its own bucket behind
	doPing(r, "10.0.2.1")

	rl.mu.Lock()
	n := len(rl.clients)
	rl.mu.Unlock()

	if n != 1 {
		t.Fatalf("got %d buckets after sweep, want 1", n)
	}
}
