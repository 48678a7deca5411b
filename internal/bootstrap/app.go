package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/account"
	"portal-gateway/internal/candidates"
	"portal-gateway/internal/dashboard"
	"portal-gateway/internal/files"
	"portal-gateway/internal/jobs"
	"portal-gateway/internal/messages"
	"portal-gateway/internal/profile"
	"portal-gateway/internal/shared/config"
	"portal-gateway/internal/shared/server"
	"portal-gateway/internal/uploads"
	"portal-gateway/internal/upstream"
)

// App holds the gateway's shared dependencies.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Upstream *upstream.Client

	DashboardService *dashboard.Service
	ProfileService   *profile.Service
}

// Build wires the upstream client, services, handlers and router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.UpstreamBaseURL) == "" {
		return nil, fmt.Errorf("UPSTREAM_BASE_URL is required")
	}

	client := upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	dashboardSvc := dashboard.NewService(client)
	profileSvc := profile.NewService(client)

	app := &App{
		Config:           cfg,
		Upstream:         client,
		DashboardService: dashboardSvc,
		ProfileService:   profileSvc,
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:     cfg,
		Account:    account.NewHandler(client),
		Candidates: candidates.NewHandler(client),
		Dashboard:  dashboard.NewHandler(dashboardSvc),
		Files:      files.NewHandler(client),
		Jobs:       jobs.NewHandler(client),
		Messages:   messages.NewHandler(client),
		Profile:    profile.NewHandler(profileSvc),
		Uploads:    uploads.NewHandler(client),
	})

	return app, nil
}
