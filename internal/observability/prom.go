package observability

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type Prom struct {
	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         *prometheus.GaugeVec
	// DB
	DbQueryDuration *prometheus.HistogramVec
	DbErrorsTotal   *prometheus.CounterVec

	// Suggestion proxy (outbound Gemini calls)

	SuggestionDuration *prometheus.HistogramVec
	SuggestionResults  *prometheus.CounterVec

	// Chat proxy

	ChatDuration *prometheus.HistogramVec
	ChatResults  *prometheus.CounterVec
}

func NewProm(reg prometheus.Registerer) *Prom {
	p := &Prom{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vitalmind",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "vitalmind",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				// Sane initial defaults
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "vitalmind",
				Name:      "http_in_flight_requests",
				Help:      "Current number of in-flight HTTP requests.",
			},
			[]string{"method", "route"},
		),
		DbQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "vitalmind",
				Subsystem: "db",
				Name:      "query_duration_seconds",
				Help:      "DB operation latency (logical op, not raw SQL)",
				Buckets:   []float64{0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.35, 0.5, 1, 2, 5},
			},
			[]string{"op", "status"},
		),
		DbErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vitalmind",
				Subsystem: "db",
				Name:      "errors_total",
				Help:      "DB errors by logical op and class.",
			},
			[]string{"op", "class"},
		),

		SuggestionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "vitalmind",
				Subsystem: "suggestions",
				Name:      "generate_duration_seconds",
				Help:      "Outbound suggestion call duration by result",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
			},
			[]string{"result"}, // result=ok|fallback|cache_hit
		),
		SuggestionResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vitalmind",
				Subsystem: "suggestions",
				Name:      "results_total",
				Help:      "Suggestion outcomes by result.",
			},
			[]string{"result"}, // result=ok|fallback|cache_hit
		),

		ChatDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "vitalmind",
				Subsystem: "chat",
				Name:      "turn_duration_seconds",
				Help:      "Outbound chat call duration by result",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
			},
			[]string{"result"}, // result=ok|fallback
		),
		ChatResults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "vitalmind",
				Subsystem: "chat",
				Name:      "results_total",
				Help:      "Chat turn outcomes by result.",
			},
			[]string{"result"}, // result=ok|fallback
		),
	}
	reg.MustRegister(p.RequestsTotal, p.RequestsDuration, p.InFlight, p.DbQueryDuration, p.DbErrorsTotal, p.SuggestionDuration, p.SuggestionResults, p.ChatDuration, p.ChatResults)

	return p
}

func (p *Prom) GinHandleMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		// route template is only available after routing; best effort:
		route := ctx.FullPath()

		if route == "" {
			route = "unmatched"
		}

		method := ctx.Request.Method
		p.InFlight.WithLabelValues(method, route).Inc()
		defer p.InFlight.WithLabelValues(method, route).Dec()
		ctx.Next()

		status := strconv.Itoa(ctx.Writer.Status())
		secs := time.Since(start).Seconds()

		p.RequestsTotal.WithLabelValues(method, route, status).Inc()
		p.RequestsDuration.WithLabelValues(method, route, status).Observe(secs)
	}
}

// ObserveSuggestion records one suggestion-proxy outcome.
func (p *Prom) ObserveSuggestion(result string, elapsed time.Duration) {
	p.SuggestionResults.WithLabelValues(result).Inc()
	p.SuggestionDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}

// ObserveChat records one chat-turn outcome.
func (p *Prom) ObserveChat(result string, elapsed time.Duration) {
	p.ChatResults.WithLabelValues(result).Inc()
	p.ChatDuration.WithLabelValues(result).Observe(elapsed.Seconds())
}
