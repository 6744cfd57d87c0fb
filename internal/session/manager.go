package session

import (
	"context"
	"time"

	"github.com/iliyamo/film-vault/internal/utils"
)

// Manager creates, reads and destroys sessions. It owns token generation;
// callers only ever see the raw token, the store only ever sees its hash.
type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// TTL reports how long a started session lives without being destroyed.
// Handlers use it to align the cookie Max-Age with the server-side expiry.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Start creates a new session for the user and returns the raw token to be
// set as a cookie. Each call produces a fresh token; sessions are never
// reused across logins.
func (m *Manager) Start(ctx context.Context, u UserSummary) (string, error) {
	token, err := utils.NewSessionToken()
	if err != nil {
		return "", err
	}
	if err := m.store.Save(ctx, utils.HashSessionToken(token), u, m.ttl); err != nil {
		return "", err
	}
	return token, nil
}

// Current resolves a raw token to its user summary. It is a pure read: it
// never extends, rewrites or destroys the session. Returns ErrNotFound for
// unknown, expired or destroyed sessions.
func (m *Manager) Current(ctx context.Context, token string) (UserSummary, error) {
	if token == "" {
		return UserSummary{}, ErrNotFound
	}
	return m.store.Load(ctx, utils.HashSessionToken(token))
}

// Destroy invalidates the session for a raw token. The store entry is gone
// before Destroy returns, so a follow-up request with the same cookie is
// treated exactly like an unauthenticated one.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.store.Delete(ctx, utils.HashSessionToken(token))
}
