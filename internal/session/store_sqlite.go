package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite as database/sql driver
)

// canonical storage key, plus the legacy names older components wrote under
const (
	tokenKey = "token"
)

var legacyTokenKeys = []string{"authToken", "jwt", "accessToken"}

// SQLiteStore keeps session values in a local sqlite file, playing the role of
// the browser's localStorage for CLI use.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the session database at path, applies
// migrations, and coalesces any legacy token keys into the canonical one.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("session dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate session db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrateLegacyKeys(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteStore wraps an existing database handle. The schema must already exist.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetToken returns the stored bearer token, or "" when not logged in.
func (s *SQLiteStore) GetToken(ctx context.Context) (string, error) {
	return s.get(ctx, tokenKey)
}

// SetToken stores the bearer token under the canonical key.
func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	return s.set(ctx, tokenKey, token)
}

// ClearToken removes the stored token.
func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session_values WHERE key = ?`, tokenKey)
	return err
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM session_values WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_values (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339))
	return err
}

// migrateLegacyKeys folds tokens written under older key names into the
// canonical key. The canonical key wins when both exist; legacy rows are
// always removed.
func (s *SQLiteStore) migrateLegacyKeys(ctx context.Context) error {
	current, err := s.get(ctx, tokenKey)
	if err != nil {
		return err
	}

	for _, key := range legacyTokenKeys {
		value, err := s.get(ctx, key)
		if err != nil {
			return err
		}
		if value != "" && current == "" {
			if err := s.set(ctx, tokenKey, value); err != nil {
				return err
			}
			current = value
		}
		if value != "" {
			if _, err := s.db.ExecContext(ctx, `DELETE FROM session_values WHERE key = ?`, key); err != nil {
				return err
			}
		}
	}
	return nil
}

var _ Store = (*SQLiteStore)(nil)
