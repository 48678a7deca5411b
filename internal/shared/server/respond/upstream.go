package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/upstream"
)

// UpstreamError maps an upstream client error to a standardized response.
// Auth failures become auth_required so the caller redirects to login; other
// upstream statuses pass through with the backend's message when it sent one.
func UpstreamError(c *gin.Context, err error, fallback string) {
	if upstream.IsAuthError(err) {
		Error(c, http.StatusUnauthorized, "auth_required", "session expired", nil)
		return
	}
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		Error(c, apiErr.Status, "upstream_error", apiErr.Message, nil)
		return
	}
	Error(c, http.StatusBadGateway, "upstream_error", fallback, nil)
}
