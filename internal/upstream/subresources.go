package upstream

import (
	"context"
	"encoding/json"
	"net/url"
)

// Resource names the profile sub-resource collections.
type Resource string

const (
	ResourceEducation       Resource = "usereducations"
	ResourceSkills          Resource = "userskills"
	ResourceLanguages       Resource = "userlanguages"
	ResourceInternships     Resource = "userinternships"
	ResourceProjects        Resource = "userprojects"
	ResourceEmployments     Resource = "useremployments"
	ResourceAccomplishments Resource = "useraccomplishments"
)

func (r Resource) apiPath() string { return "/api/" + string(r) }

// ListResource returns a sub-resource collection as raw JSON for pass-through.
func (c *Client) ListResource(ctx context.Context, token string, r Resource) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.getJSON(ctx, token, r.apiPath(), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountResource returns how many entries a sub-resource collection holds.
func (c *Client) CountResource(ctx context.Context, token string, r Resource) (int, error) {
	var items []json.RawMessage
	if err := c.getJSON(ctx, token, r.apiPath(), nil, &items); err != nil {
		return 0, err
	}
	return len(items), nil
}

// CreateResource adds an entry to a sub-resource collection.
func (c *Client) CreateResource(ctx context.Context, token string, r Resource, body json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := c.sendJSON(ctx, "POST", r.apiPath(), token, body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteResource removes an entry. For skills and languages the key is the
// natural name, not a numeric id; the backend routes both the same way.
func (c *Client) DeleteResource(ctx context.Context, token string, r Resource, key string) error {
	return c.sendJSON(ctx, "DELETE", r.apiPath()+"/"+url.PathEscape(key), token, nil, nil)
}

// Accomplishment carries the type discriminator used for count breakdowns.
type Accomplishment struct {
	Type string `json:"type"`
}

// ListAccomplishments returns the accomplishment entries with their types.
func (c *Client) ListAccomplishments(ctx context.Context, token string) ([]Accomplishment, error) {
	var items []Accomplishment
	if err := c.getJSON(ctx, token, ResourceAccomplishments.apiPath(), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
