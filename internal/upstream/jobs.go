package upstream

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListJobs returns the authenticated poster's job postings.
func (c *Client) ListJobs(ctx context.Context, token string) ([]Job, error) {
	var jobs []Job
	if err := c.getJSON(ctx, token, "/api/jobs", nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJob forwards the full job form body to the backend.
func (c *Client) UpdateJob(ctx context.Context, token string, id int64, body json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.sendJSON(ctx, "PUT", fmt.Sprintf("/api/jobs/%d", id), token, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteJob removes a job posting.
func (c *Client) DeleteJob(ctx context.Context, token string, id int64) error {
	return c.sendJSON(ctx, "DELETE", fmt.Sprintf("/api/jobs/%d", id), token, nil, nil)
}

// ListApplications returns all applications submitted against the given job.
func (c *Client) ListApplications(ctx context.Context, token string, jobID int64) ([]Application, error) {
	var apps []Application
	if err := c.getJSON(ctx, token, fmt.Sprintf("/api/applications/%d", jobID), nil, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
