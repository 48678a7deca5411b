package profile

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/upstream"
)

// Handler exposes the profile, completion, and sub-resource endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// subResources maps route segments to upstream collections. Accomplishments
// are included; their breakdown only matters for the completion payload.
var subResources = map[string]upstream.Resource{
	"education":       upstream.ResourceEducation,
	"skills":          upstream.ResourceSkills,
	"languages":       upstream.ResourceLanguages,
	"internships":     upstream.ResourceInternships,
	"projects":        upstream.ResourceProjects,
	"employments":     upstream.ResourceEmployments,
	"accomplishments": upstream.ResourceAccomplishments,
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profile", h.getProfile)
	rg.PUT("/profile", h.updateProfile)
	rg.GET("/profile/completion", h.getCompletion)

	for segment, resource := range subResources {
		rg.GET("/profile/"+segment, h.listResource(resource))
		rg.POST("/profile/"+segment, h.createResource(resource))
		rg.DELETE("/profile/"+segment+"/:key", h.deleteResource(resource))
	}
}

func (h *Handler) getProfile(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	prof, err := h.Svc.Upstream.GetProfile(c.Request.Context(), token)
	if err != nil {
		respond.UpstreamError(c, err, "failed to load profile")
		return
	}
	respond.OK(c, prof)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var update upstream.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid profile body", nil)
		return
	}

	token := middleware.TokenFromContext(c)
	if err := h.Svc.Upstream.UpdateProfile(c.Request.Context(), token, update); err != nil {
		respond.UpstreamError(c, err, "failed to update profile")
		return
	}
	respond.OK(c, gin.H{"updated": true})
}

func (h *Handler) getCompletion(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	view, err := h.Svc.BuildCompletion(c.Request.Context(), token)
	if err != nil {
		respond.UpstreamError(c, err, "failed to compute profile completion")
		return
	}
	respond.OK(c, view)
}

func (h *Handler) listResource(resource upstream.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.TokenFromContext(c)
		items, err := h.Svc.Upstream.ListResource(c.Request.Context(), token, resource)
		if err != nil {
			respond.UpstreamError(c, err, "failed to load "+string(resource))
			return
		}
		respond.OK(c, items)
	}
}

func (h *Handler) createResource(resource upstream.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
		if err != nil || len(body) == 0 {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "request body required", nil)
			return
		}

		token := middleware.TokenFromContext(c)
		created, err := h.Svc.Upstream.CreateResource(c.Request.Context(), token, resource, body)
		if err != nil {
			respond.UpstreamError(c, err, "failed to create "+string(resource)+" entry")
			return
		}
		respond.Created(c, created)
	}
}

func (h *Handler) deleteResource(resource upstream.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		token := middleware.TokenFromContext(c)
		if err := h.Svc.Upstream.DeleteResource(c.Request.Context(), token, resource, key); err != nil {
			respond.UpstreamError(c, err, "failed to delete "+string(resource)+" entry")
			return
		}
		respond.OK(c, gin.H{"deleted": true})
	}
}
