package upstream

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"portal-gateway/internal/shared/metrics"
)

// File kinds accepted by the profile upload endpoints.
const (
	FileKindPhoto  = "photo"
	FileKindResume = "resume"
)

// UploadResult is the backend's response to a successful upload.
type UploadResult struct {
	URL string `json:"url"`
}

// UploadProfileFile sends a photo or resume as a multipart form POST.
func (c *Client) UploadProfileFile(ctx context.Context, token, kind, fileName string, data []byte) (UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return UploadResult{}, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return UploadResult{}, fmt.Errorf("build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return UploadResult{}, fmt.Errorf("build multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/userprofile/upload/"+kind, token, nil, &buf, writer.FormDataContentType())
	if err != nil {
		return UploadResult{}, err
	}

	var result UploadResult
	if err := c.do(req, &result); err != nil {
		return UploadResult{}, err
	}
	return result, nil
}

// DeleteProfileFile removes the stored photo or resume.
func (c *Client) DeleteProfileFile(ctx context.Context, token, kind string) error {
	return c.sendJSON(ctx, "DELETE", "/api/userprofile/delete/"+kind, token, nil, nil)
}

// Download proxies an object-storage URL through the backend's authenticated
// download endpoint. The caller must close the response body.
func (c *Client) Download(ctx context.Context, token, fileURL string) (*http.Response, error) {
	query := url.Values{"url": {fileURL}}
	req, err := c.newRequest(ctx, http.MethodGet, "/download", token, query, nil, "")
	if err != nil {
		return nil, err
	}

	metrics.IncUpstreamRequest()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncUpstreamFailure()
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.IncUpstreamFailure()
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}
