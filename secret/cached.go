package secret

import (
	"context"
	"sync"
	"time"
)

// DefaultCacheTTL is used when CachedStore is constructed with a
// non-positive TTL.
const DefaultCacheTTL = 5 * time.Minute

// CachedStore wraps a slow store (typically a network-backed plugin) with a
// TTL read-through cache. Hits are served from memory; misses are not cached,
// so a key provisioned in the backend becomes visible on the next read.
// Set and Delete write through and invalidate the cached entry.
type CachedStore struct {
	inner Store
	ttl   time.Duration
	now   func() time.Time

	mu      sync.RWMutex
	entries map[string]cachedEntry
}

type cachedEntry struct {
	value     string
	expiresAt time.Time
}

// NewCachedStore wraps inner with a read cache holding entries for ttl.
func NewCachedStore(inner Store, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		inner:   inner,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cachedEntry),
	}
}

// Name returns the wrapped store's name: caching is transparent to callers
// and to Info.Source.
func (s *CachedStore) Name() string { return s.inner.Name() }

// Available defers to the wrapped store.
func (s *CachedStore) Available(ctx context.Context) bool { return s.inner.Available(ctx) }

// Get serves from cache when fresh, otherwise reads through and caches a hit.
func (s *CachedStore) Get(ctx context.Context, key string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.entries[key]
	s.mu.RUnlock()

	if ok {
		if s.now().Before(entry.expiresAt) {
			return entry.value, true
		}
		// Expired - clean up lazily
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
	}

	v, ok := s.inner.Get(ctx, key)
	if !ok {
		return "", false
	}
	s.mu.Lock()
	s.entries[key] = cachedEntry{value: v, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return v, true
}

// Has reports whether Get would succeed for key.
func (s *CachedStore) Has(ctx context.Context, key string) bool {
	_, ok := s.Get(ctx, key)
	return ok
}

// Info returns a diagnostic probe for key.
func (s *CachedStore) Info(ctx context.Context, key string) Info {
	return infoOf(ctx, s, key)
}

// Set writes through to the wrapped store and invalidates the cached entry.
func (s *CachedStore) Set(ctx context.Context, key, value string) error {
	if err := s.inner.Set(ctx, key, value); err != nil {
		return err
	}
	s.invalidate(key)
	return nil
}

// Delete writes through to the wrapped store and invalidates the cached entry.
func (s *CachedStore) Delete(ctx context.Context, key string) error {
	if err := s.inner.Delete(ctx, key); err != nil {
		return err
	}
	s.invalidate(key)
	return nil
}

// Invalidate drops the cached entry for key, if any.
func (s *CachedStore) Invalidate(key string) { s.invalidate(key) }

func (s *CachedStore) invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

var _ Store = (*CachedStore)(nil)
