package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prom8eus-backend/internal/account"
	googleauth "prom8eus-backend/internal/auth"
	"prom8eus-backend/internal/catalog"
	"prom8eus-backend/internal/feedback"
	"prom8eus-backend/internal/matchruns"
	"prom8eus-backend/internal/report"
	"prom8eus-backend/internal/shared/config"
	"prom8eus-backend/internal/shared/metrics"
	"prom8eus-backend/internal/shared/server/middleware"
	"prom8eus-backend/internal/shared/server/respond"
	"prom8eus-backend/internal/taskdocs"
	"prom8eus-backend/internal/usage"
	"prom8eus-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	AccountHandler  *account.Handler
	CatalogHandler  *catalog.Handler
	MatchHandler    *matchruns.Handler
	ReportHandler   *report.Handler
	DocumentHandler *taskdocs.Handler
	FeedbackHandler *feedback.Handler
	UsageHandler    *usage.Handler
	UserHandler     *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: routeGroup,
		Rules: map[string]middleware.RateLimitRule{
			"MATCH":  {Rate: 5, Burst: 20},
			"UPLOAD": {Rate: 2, Burst: 10},
		},
	}))
	deps.GoogleAuth.RegisterRoutes(api)
	deps.UserHandler.RegisterRoutes(api)
	deps.CatalogHandler.RegisterRoutes(api)
	deps.MatchHandler.RegisterRoutes(api)
	deps.ReportHandler.RegisterRoutes(api)
	deps.DocumentHandler.RegisterRoutes(api)
	deps.FeedbackHandler.RegisterRoutes(api)
	deps.UsageHandler.RegisterRoutes(api)
	deps.AccountHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		deps.UsageHandler.RegisterDevRoutes(dev)
		deps.CatalogHandler.RegisterDevRoutes(dev)
		dev.GET("/metrics", metrics.Handler())
	}

	return r
}

// routeGroup buckets the expensive endpoints for rate limiting. Everything
// else passes through unlimited.
func routeGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return ""
	}
	switch c.FullPath() {
	case "/api/v1/match":
		return "MATCH"
	case "/api/v1/task-documents":
		return "UPLOAD"
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
