package upstream

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrInvalidSignupBody = errors.New("invalid signup body")
	ErrMissingUserType   = errors.New("userType is required")
)

// Signup forwards a signup request. The body carries the userType
// discriminator ("poster" or "seeker"); no bearer token is sent.
func (c *Client) Signup(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	var probe struct {
		UserType string `json:"userType"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, ErrInvalidSignupBody
	}
	if probe.UserType == "" {
		return nil, ErrMissingUserType
	}

	var out json.RawMessage
	if err := c.sendJSON(ctx, "POST", "/api/signup", "", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
