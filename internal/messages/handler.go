package messages

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/upstream"
)

// Handler proxies the message endpoints.
type Handler struct {
	Upstream *upstream.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{Upstream: client}
}

// RegisterRoutes attaches message routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages", h.listMessages)
	rg.POST("/messages", h.sendMessage)
	rg.PUT("/messages/:id", h.updateMessage)
}

func (h *Handler) listMessages(c *gin.Context) {
	token := middleware.TokenFromContext(c)
	items, err := h.Upstream.ListMessages(c.Request.Context(), token, c.Query("type"))
	if err != nil {
		respond.UpstreamError(c, err, "failed to load messages")
		return
	}
	respond.OK(c, items)
}

func (h *Handler) sendMessage(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil || len(body) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body required", nil)
		return
	}

	token := middleware.TokenFromContext(c)
	sent, err := h.Upstream.SendMessage(c.Request.Context(), token, body)
	if err != nil {
		respond.UpstreamError(c, err, "failed to send message")
		return
	}
	respond.Created(c, sent)
}

func (h *Handler) updateMessage(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil || len(body) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "request body required", nil)
		return
	}

	token := middleware.TokenFromContext(c)
	updated, err := h.Upstream.UpdateMessage(c.Request.Context(), token, c.Param("id"), body)
	if err != nil {
		respond.UpstreamError(c, err, "failed to update message")
		return
	}
	respond.OK(c, updated)
}
