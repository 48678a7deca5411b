package uploads

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"portal-gateway/internal/shared/server/middleware"
	"portal-gateway/internal/shared/server/respond"
	"portal-gateway/internal/shared/util"
	"portal-gateway/internal/upstream"
)

// Handler validates photo and resume uploads before forwarding them.
type Handler struct {
	Upstream *upstream.Client
}

// NewHandler constructs a Handler.
func NewHandler(client *upstream.Client) *Handler {
	return &Handler{Upstream: client}
}

// RegisterRoutes attaches upload routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profile/photo", h.upload(upstream.FileKindPhoto))
	rg.POST("/profile/resume", h.upload(upstream.FileKindResume))
	rg.DELETE("/profile/photo", h.remove(upstream.FileKindPhoto))
	rg.DELETE("/profile/resume", h.remove(upstream.FileKindResume))
}

func (h *Handler) upload(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "multipart field 'file' required", nil)
			return
		}
		if fileHeader.Size > MaxUploadBytes {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the size limit", nil)
			return
		}

		name, err := util.SanitizeFileName(fileHeader.Filename)
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid file name", nil)
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "could not read uploaded file", nil)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, MaxUploadBytes+1))
		if err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_request", "could not read uploaded file", nil)
			return
		}

		if kind == upstream.FileKindResume {
			err = CheckResume(name, data)
		} else {
			err = CheckPhoto(data)
		}
		if err != nil {
			respond.Error(c, preflightStatus(err), "invalid_file", err.Error(), nil)
			return
		}

		token := middleware.TokenFromContext(c)
		result, err := h.Upstream.UploadProfileFile(c.Request.Context(), token, kind, name, data)
		if err != nil {
			respond.UpstreamError(c, err, "failed to upload "+kind)
			return
		}
		respond.OK(c, result)
	}
}

func (h *Handler) remove(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := middleware.TokenFromContext(c)
		if err := h.Upstream.DeleteProfileFile(c.Request.Context(), token, kind); err != nil {
			respond.UpstreamError(c, err, "failed to delete "+kind)
			return
		}
		respond.OK(c, gin.H{"deleted": true})
	}
}

func preflightStatus(err error) int {
	if errors.Is(err, ErrTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusUnprocessableEntity
}
