package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/account"
	"portal-gateway/internal/candidates"
	"portal-gateway/internal/dashboard"
	"portal-gateway/internal/files"
	"portal-gateway/internal/jobs"
	"portal-gateway/internal/messages"
	"portal-gateway/internal/profile"
	"portal-gateway/internal/session"
	"portal-gateway/internal/shared/config"
	"portal-gateway/internal/shared/metrics"
	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/uploads"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config     config.Config
	Account    *account.Handler
	Candidates *candidates.Handler
	Dashboard  *dashboard.Handler
	Files      *files.Handler
	Jobs       *jobs.Handler
	Messages   *messages.Handler
	Profile    *profile.Handler
	Uploads    *uploads.Handler
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
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.Account.RegisterRoutes(api)

	// Anonymous visitors may search and download; a token is forwarded
	// when present.
	open := api.Group("")
	open.Use(middleware.OptionalAuth())
	deps.Candidates.RegisterSearchRoutes(open)
	deps.Files.RegisterRoutes(open)

	authed := api.Group("")
	authed.Use(middleware.Auth())
	deps.Messages.RegisterRoutes(authed)

	poster := authed.Group("")
	poster.Use(middleware.RequireUserType(session.UserTypePoster))
	deps.Dashboard.RegisterRoutes(poster)
	deps.Jobs.RegisterRoutes(poster)
	deps.Candidates.RegisterSavedRoutes(poster)

	seeker := authed.Group("")
	seeker.Use(middleware.RequireUserType(session.UserTypeSeeker))
	deps.Profile.RegisterRoutes(seeker)
	deps.Uploads.RegisterRoutes(seeker)

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
