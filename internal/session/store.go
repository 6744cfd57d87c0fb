// Package session implements the server-side session authority. A session is
// an ephemeral record keyed by the SHA-256 hash of an opaque token; the raw
// token travels only in an HTTP cookie and the server remains the single
// source of truth for who is logged in.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// UserSummary is the minimal user data a session carries for display and
// identification. It never includes the password hash.
type UserSummary struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// ErrNotFound is returned when no session exists for a token hash, either
// because it was never started, already destroyed, or expired.
var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by token hash. Implementations must be safe
// for concurrent use; sessions from different clients share nothing except
// the store itself.
type Store interface {
	// Save writes the summary under the given token hash with a TTL.
	Save(ctx context.Context, tokenHash string, u UserSummary, ttl time.Duration) error
	// Load returns the summary for a token hash, or ErrNotFound.
	Load(ctx context.Context, tokenHash string) (UserSummary, error)
	// Delete removes the session. Deleting an absent session is not an error.
	Delete(ctx context.Context, tokenHash string) error
}

const keyPrefix = "session:"

// RedisStore keeps sessions in Redis. Expiry is delegated to Redis TTLs so
// no sweeper goroutine is needed.
type RedisStore struct{ RDB *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{RDB: rdb} }

func (s *RedisStore) Save(ctx context.Context, tokenHash string, u UserSummary, ttl time.Duration) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.RDB.Set(ctx, keyPrefix+tokenHash, b, ttl).Err()
}

func (s *RedisStore) Load(ctx context.Context, tokenHash string) (UserSummary, error) {
	b, err := s.RDB.Get(ctx, keyPrefix+tokenHash).Bytes()
	if errors.Is(err, redis.Nil) {
		return UserSummary{}, ErrNotFound
	}
	if err != nil {
		return UserSummary{}, err
	}
	var u UserSummary
	if err := json.Unmarshal(b, &u); err != nil {
		return UserSummary{}, err
	}
	return u, nil
}

func (s *RedisStore) Delete(ctx context.Context, tokenHash string) error {
	return s.RDB.Del(ctx, keyPrefix+tokenHash).Err()
}
