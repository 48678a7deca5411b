package dashboard

import (
	"time"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
)

// Handler exposes the aggregated dashboard endpoint.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches dashboard routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.getDashboard)
}

func (h *Handler) getDashboard(c *gin.Context) {
	token := middleware.TokenFromContext(c)

	view, err := h.Svc.Build(c.Request.Context(), token, time.Now())
	if err != nil {
		respond.UpstreamError(c, err, "failed to load dashboard")
		return
	}

	respond.OK(c, view)
}
