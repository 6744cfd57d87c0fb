package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. It honors TTLs lazily on
// read. Intended for tests and single-instance development runs; production
// deployments use RedisStore so sessions survive restarts and are shared
// across replicas.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	user      UserSummary
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: map[string]memoryEntry{}}
}

func (s *MemoryStore) Save(_ context.Context, tokenHash string, u UserSummary, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[tokenHash] = memoryEntry{user: u, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Load(_ context.Context, tokenHash string) (UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[tokenHash]
	if !ok {
		return UserSummary{}, ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(s.entries, tokenHash)
		return UserSummary{}, ErrNotFound
	}
	return e.user, nil
}

func (s *MemoryStore) Delete(_ context.Context, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, tokenHash)
	return nil
}

// Len reports the number of live entries, counting not-yet-reaped expired
// ones. Used by tests asserting how many sessions an operation started.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
