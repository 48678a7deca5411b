package jobs

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/upstream"
)

// Handler exposes the poster's job management endpoints.
type Handler struct {
	Upstream *upstream.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{Upstream: client}
}

// RegisterRoutes attaches job routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.listJobs)
	rg.PUT("/jobs/:id", h.updateJob)
	rg.DELETE("/jobs/:id", h.deleteJob)
	rg.GET("/jobs/:id/applications", h.listApplications)
}

func (h *Handler) listJobs(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	jobs, err := h.Upstream.ListJobs(c.Request.Context(), token)
	if err != nil {
		respond.UpstreamError(c, err, "failed to load jobs")
		return
	}
	if jobs == nil {
		jobs = []upstream.Job{}
	}
	respond.OK(c, jobs)
}

func (h *Handler) updateJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil || len(body) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body required", nil)
		return
	}

	token := middleware.TokenFromContext(c)
	updated, err := h.Upstream.UpdateJob(c.Request.Context(), token, id, body)
	if err != nil {
		respond.UpstreamError(c, err, "failed to update job")
		return
	}
	respond.OK(c, updated)
}

func (h *Handler) deleteJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	token := middleware.TokenFromContext(c)
	if err := h.Upstream.DeleteJob(c.Request.Context(), token, id); err != nil {
		respond.UpstreamError(c, err, "failed to delete job")
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}

func (h *Handler) listApplications(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	token := middleware.TokenFromContext(c)
	apps, err := h.Upstream.ListApplications(c.Request.Context(), token, id)
	if err != nil {
		respond.UpstreamError(c, err, "failed to load applications")
		return
	}
	if apps == nil {
		apps = []upstream.Application{}
	}
	respond.OK(c, apps)
}

func jobID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid job id", nil)
		return 0, false
	}
	return id, true
}
