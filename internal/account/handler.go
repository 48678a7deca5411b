package account

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/upstream"
)

// Handler proxies account creation. Signup is the one unauthenticated write.
type Handler struct {
	Upstream *upstream.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{Upstream: client}
}

// RegisterRoutes attaches account routes to the public router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/signup", h.signup)
}

func (h *Handler) signup(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil || len(body) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body required", nil)
		return
	}

	created, err := h.Upstream.Signup(c.Request.Context(), body)
	if err != nil {
		if errors.Is(err, upstream.ErrInvalidSignupBody) || errors.Is(err, upstream.ErrMissingUserType) {
			respond.Error(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
			return
		}
		respond.UpstreamError(c, err, "signup failed")
		return
	}
	respond.Created(c, created)
}
