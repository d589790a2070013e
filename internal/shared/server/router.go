package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumebuilder-backend/internal/auth"
	"resumebuilder-backend/internal/resumes"
	"resumebuilder-backend/internal/services/health"
	"resumebuilder-backend/internal/sessions"
	"resumebuilder-backend/internal/shared/config"
	"resumebuilder-backend/internal/shared/metrics"
	"resumebuilder-backend/internal/shared/server/middleware"
	"resumebuilder-backend/internal/shared/server/respond"
	"resumebuilder-backend/internal/users"
)

// Resume generation is the expensive route; one request every few
// seconds with a small burst is plenty for an interactive UI.
var generateLimitRule = middleware.RateLimitRule{Rate: 0.5, Burst: 3}

// RouterDeps carries the handlers and services the router wires up.
type RouterDeps struct {
	Config         config.Config
	Health         *health.Service
	Registry       sessions.Registry
	AuthHandler    *auth.Handler
	GoogleAuth     *auth.GoogleService
	ResumesHandler *resumes.Handler
	UsersService   *users.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Registry, deps.Config.SessionTTL),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})

	deps.AuthHandler.RegisterRoutes(api)
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api, deps.UsersService)

	limiter := middleware.NewRateLimiter(nil)
	deps.ResumesHandler.RegisterRoutes(api, middleware.RateLimit(limiter, generateLimitRule))

	return r
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
