// Package session is the single source of truth for the locally persisted
// bearer token. Components take a Store instead of reading ad-hoc storage keys.
package session

import "context"

// Store persists the bearer token between runs.
type Store interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
