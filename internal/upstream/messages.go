package upstream

import (
	"context"
	"encoding/json"
	"net/url"
)

// ListMessages returns the user's inbox, or sent messages when typ == "sent".
// The selector is forwarded verbatim as the backend's `type` query parameter.
func (c *Client) ListMessages(ctx context.Context, token, typ string) (json.RawMessage, error) {
	var query url.Values
	if typ == "sent" {
		query = url.Values{"type": {"sent"}}
	}
	var out json.RawMessage
	if err := c.getJSON(ctx, token, "/api/messages", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SendMessage forwards a new message body to the backend.
func (c *Client) SendMessage(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.sendJSON(ctx, "POST", "/api/messages", token, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateMessage updates a message (read state, archive, and so on).
func (c *Client) UpdateMessage(ctx context.Context, token, id string, body json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.sendJSON(ctx, "PUT", "/api/messages/"+url.PathEscape(id), token, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
