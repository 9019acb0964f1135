package secret

import (
	"context"
	"sync"
)

// MemoryStore keeps secrets in a process-local map. It is fully read-write and
// loses its contents when the instance is dropped. Independent instances never
// share state.
//
// The map is guarded by an RWMutex: concurrent readers, exclusive writers.
// Concurrent Set calls to the same key have no ordering guarantee beyond
// "last completed write wins".
type MemoryStore struct {
	mu      sync.RWMutex
	secrets map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{secrets: make(map[string]string)}
}

// NewMemoryStoreFrom creates an in-memory store seeded with initial values.
// The input map is copied.
func NewMemoryStoreFrom(initial map[string]string) *MemoryStore {
	secrets := make(map[string]string, len(initial))
	for k, v := range initial {
		secrets[k] = v
	}
	return &MemoryStore{secrets: secrets}
}

// Name returns "memory".
func (s *MemoryStore) Name() string { return "memory" }

// Available always reports true.
func (s *MemoryStore) Available(_ context.Context) bool { return true }

// Get returns the value for key if present.
func (s *MemoryStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.secrets[key]
	return v, ok
}

// Has reports whether key is present.
func (s *MemoryStore) Has(_ context.Context, key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.secrets[key]
	return ok
}

// Info returns a diagnostic probe for key.
func (s *MemoryStore) Info(ctx context.Context, key string) Info {
	return infoOf(ctx, s, key)
}

// Set inserts or overwrites key unconditionally. Last write wins.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.secrets[key] = value
	s.mu.Unlock()
	return nil
}

// Delete removes key. Idempotent - no error on miss.
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.secrets, key)
	s.mu.Unlock()
	return nil
}

// Clear empties the store.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	s.secrets = make(map[string]string)
	s.mu.Unlock()
}

// Len returns the current number of stored keys.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.secrets)
}

// Empty reports whether the store holds no keys.
func (s *MemoryStore) Empty() bool {
	return s.Len() == 0
}

// Snapshot returns a copy of the current contents.
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.secrets))
	for k, v := range s.secrets {
		out[k] = v
	}
	return out
}

var _ Store = (*MemoryStore)(nil)
