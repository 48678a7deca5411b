package candidates

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/upstream"
)

// Handler exposes candidate search and the poster's saved list.
type Handler struct {
	Upstream *upstream.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{Upstream: client}
}

// RegisterSearchRoutes attaches the search route; the token is optional here,
// anonymous visitors can browse.
func (h *Handler) RegisterSearchRoutes(rg *gin.RouterGroup) {
	rg.GET("/candidates/search", h.search)
}

// RegisterSavedRoutes attaches the poster-only saved-candidate routes.
func (h *Handler) RegisterSavedRoutes(rg *gin.RouterGroup) {
	rg.POST("/candidates/saved", h.save)
	rg.DELETE("/candidates/saved/:id", h.unsave)
}

func (h *Handler) search(c *gin.Context) {
	query := upstream.CandidateSearch{
		Keywords:   c.Query("keywords"),
		Location:   c.Query("location"),
		Experience: c.Query("experience"),
		Salary:     c.Query("salary"),
	}

	token := middleware.TokenFromContext(c)
	results, err := h.Upstream.SearchCandidates(c.Request.Context(), token, query)
	if err != nil {
		respond.UpstreamError(c, err, "candidate search failed")
		return
	}
	respond.OK(c, results)
}

func (h *Handler) save(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil || len(body) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body required", nil)
		return
	}

	token := middleware.TokenFromContext(c)
	saved, err := h.Upstream.SaveCandidate(c.Request.Context(), token, body)
	if err != nil {
		respond.UpstreamError(c, err, "failed to save candidate")
		return
	}
	respond.Created(c, saved)
}

func (h *Handler) unsave(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	if err := h.Upstream.UnsaveCandidate(c.Request.Context(), token, c.Param("id")); err != nil {
		respond.UpstreamError(c, err, "failed to remove saved candidate")
		return
	}
	respond.OK(c, gin.H{"deleted": true})
}
