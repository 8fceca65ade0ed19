package http

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/vitalmind/vitalmind/internal/auth"
	"github.com/vitalmind/vitalmind/internal/cache"
	"github.com/vitalmind/vitalmind/internal/config"
	"github.com/vitalmind/vitalmind/internal/http/handlers"
	"github.com/vitalmind/vitalmind/internal/http/middlewares"
	"github.com/vitalmind/vitalmind/internal/observability"
	"github.com/vitalmind/vitalmind/internal/repo/postgres"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// Deps carries everything the router wires together. Pool and JWT are
// required; the rest degrade gracefully when nil.
type Deps struct {
	Cfg       config.Config
	Log       *slog.Logger
	Pool      *pgxpool.Pool
	JWT       *auth.Manager
	Prom      *observability.Prom
	Registry  *prometheus.Registry
	Redis     handlers.Pinger
	Suggester handlers.Suggester
	Chat      handlers.Chatter
}

func NewRouter(deps Deps) *gin.Engine {
	if deps.Cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(deps.Log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddleware(deps.Cfg.CORSOrigins))
	r.Use(middlewares.MaxBodyBytes(maxBodyBytes))
	r.Use(otelgin.Middleware("vitalmind-api"))

	if deps.Prom != nil {
		r.Use(deps.Prom.GinHandleMiddleware())
	}

	// health

	var dbPing handlers.Pinger
	if deps.Pool != nil {
		dbPing = poolPinger{pool: deps.Pool}
	}

	health := handlers.NewHealthHandler(dbPing, deps.Redis)
	r.GET("/healthz", health.Healthz)
	r.GET("/readyz", health.Readyz)

	if deps.Registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// wire up repositories

	usersRepo := postgres.NewUsersRepo(deps.Pool)
	refreshRepo := postgres.NewRefreshTokensRepo(deps.Pool)
	logsRepo := postgres.NewHealthLogsRepo(deps.Pool, deps.Prom)
	suggestionsRepo := postgres.NewSuggestionsRepo(deps.Pool, deps.Prom)

	listCache := cache.New(30 * time.Second)

	// wire up handlers

	authHandler := handlers.NewAuthHandler(usersRepo, usersRepo, deps.JWT, refreshRepo, deps.Cfg)
	logsHandler := handlers.NewHealthLogsHandler(logsRepo, listCache)
	suggestionsHandler := handlers.NewSuggestionsHandler(suggestionsRepo, deps.Suggester)
	insightsHandler := handlers.NewInsightsHandler(logsRepo)
	chatHandler := handlers.NewChatHandler(deps.Chat)

	authLimiter := middlewares.NewRateLimiter(10, time.Minute)
	generateLimiter := middlewares.NewRateLimiter(20, time.Minute)

	authGroup := r.Group("/auth")
	authGroup.Use(middlewares.RequireJSON())
	authGroup.Use(authLimiter.RateLimiterMiddleware(middlewares.KeyByIP))
	{
		authGroup.POST("/signup", authHandler.SignUp)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
	}

	authMW := middlewares.NewAuthMiddleware(deps.JWT)

	api := r.Group("/")
	api.Use(authMW.RequireAuth())
	{
		api.POST("/logs", middlewares.RequireJSON(), logsHandler.CreateLog)
		api.GET("/logs", logsHandler.ListLogs)

		api.POST("/suggestions/generate",
			middlewares.RequireJSON(),
			generateLimiter.RateLimiterMiddleware(middlewares.KeyByUserOrIP),
			suggestionsHandler.Generate,
		)
		api.POST("/suggestions", middlewares.RequireJSON(), suggestionsHandler.SaveSuggestion)
		api.GET("/suggestions", suggestionsHandler.ListSuggestions)

		api.POST("/chat",
			middlewares.RequireJSON(),
			generateLimiter.RateLimiterMiddleware(middlewares.KeyByUserOrIP),
			chatHandler.Chat,
		)

		api.GET("/insights", insightsHandler.GetInsights)
	}

	return r
}

type poolPinger struct {
	pool *pgxpool.Pool
}

func (p poolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
