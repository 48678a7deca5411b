package files

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/shared/telemetry"
	"portal-gateway/internal/upstream"
)

// Handler streams authenticated downloads from the backend's proxy endpoint.
type Handler struct {
	Upstream *upstream.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{Upstream: client}
}

// RegisterRoutes attaches the download route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/download", h.download)
}

func (h *Handler) download(c *gin.Context) {
	fileURL := c.Query("url")
	if fileURL == "" {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "query parameter 'url' required", nil)
		return
	}

	token := middleware.TokenFromContext(c)
	resp, err := h.Upstream.Download(c.Request.Context(), token, fileURL)
	if err != nil {
		respond.UpstreamError(c, err, "download failed")
		return
	}
	defer resp.Body.Close()

	for _, header := range []string{"Content-Type", "Content-Length", "Content-Disposition"} {
		if v := resp.Header.Get(header); v != "" {
			c.Header(header, v)
		}
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		// Headers are already out; all we can do is log the broken stream.
		telemetry.Warn("files.download.stream_interrupted", map[string]any{"err": err.Error()})
	}
}
