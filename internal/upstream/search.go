package upstream

import (
	"context"
	"encoding/json"
	"net/url"
)

// CandidateSearch holds the candidate search filters.
type CandidateSearch struct {
	Keywords   string
	Location   string
	Experience string
	Salary     string
}

// SearchCandidates runs a candidate search. The token is optional.
func (c *Client) SearchCandidates(ctx context.Context, token string, q CandidateSearch) (json.RawMessage, error) {
	query := url.Values{}
	if q.Keywords != "" {
		query.Set("keywords", q.Keywords)
	}
	if q.Location != "" {
		query.Set("location", q.Location)
	}
	if q.Experience != "" {
		query.Set("experience", q.Experience)
	}
	if q.Salary != "" {
		query.Set("salary", q.Salary)
	}
	var out json.RawMessage
	if err := c.getJSON(ctx, token, "/api/search/candidates", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveCandidate bookmarks a candidate for the poster.
func (c *Client) SaveCandidate(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.sendJSON(ctx, "POST", "/api/saved-candidates", token, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnsaveCandidate removes a saved candidate.
func (c *Client) UnsaveCandidate(ctx context.Context, token, id string) error {
	return c.sendJSON(ctx, "DELETE", "/api/saved-candidates/"+url.PathEscape(id), token, nil, nil)
}
