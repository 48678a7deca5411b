package session

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Claims is the identity payload carried inside a bearer token. The payload is
// decoded client-side for navigation gating only; verification is the backend's job.
type Claims struct {
	Sub      string `json:"sub"`
	UserType string `json:"userType"`
	Email    string `json:"email,omitempty"`
	Exp      int64  `json:"exp,omitempty"`
}

// User types carried in the token's userType claim.
const (
	UserTypePoster = "poster"
	UserTypeSeeker = "seeker"
)

var ErrInvalidToken = errors.New("invalid token")

// DecodeClaims extracts the claims from a bearer token without verifying its
// signature.
func DecodeClaims(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrInvalidToken
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return Claims{}, ErrInvalidToken
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return Claims{}, ErrInvalidToken
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}

// Expired reports whether the claims carry an exp in the past. Tokens without
// an exp never expire client-side.
func (c Claims) Expired(now time.Time) bool {
	return c.Exp > 0 && now.UTC().Unix() > c.Exp
}

func decodeSegment(seg string) ([]byte, error) {
	seg = strings.TrimRight(seg, "=")
	if data, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(seg)
}
