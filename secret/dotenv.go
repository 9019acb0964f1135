package secret

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// DotenvStore reads secrets from a .env file without touching the process
// environment. The file is parsed once at construction; Reload re-reads it.
//
// Lookup mirrors EnvStore: the key verbatim, then the provider alias table,
// then strings.ToUpper(key) + "_API_KEY". The store is read-only; .env files
// are managed by the user, not rewritten by this library.
type DotenvStore struct {
	path string

	mu     sync.RWMutex
	values map[string]string
	loaded bool
}

// NewDotenvStore creates a store over the .env file at path. A missing or
// unparsable file is not an error: the store simply reports unavailable and
// resolves nothing until a successful Reload.
func NewDotenvStore(path string) *DotenvStore {
	s := &DotenvStore{path: path}
	_ = s.Reload()
	return s
}

// Reload re-parses the backing file. It returns the parse error, if any, and
// marks the store unavailable on failure.
func (s *DotenvStore) Reload() error {
	values, err := godotenv.Read(s.path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.values = nil
		s.loaded = false
		return fmt.Errorf("dotenv store: reading %s: %w", s.path, err)
	}
	s.values = values
	s.loaded = true
	return nil
}

// Name returns "dotenv".
func (s *DotenvStore) Name() string { return "dotenv" }

// Available reports whether the backing file parsed on the last load.
func (s *DotenvStore) Available(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Get resolves key against the parsed file contents.
func (s *DotenvStore) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if v, ok := s.values[key]; ok && v != "" {
		return v, true
	}
	for _, name := range providerEnvVars[strings.ToLower(key)] {
		if v, ok := s.values[name]; ok && v != "" {
			return v, true
		}
	}
	if v, ok := s.values[strings.ToUpper(key)+"_API_KEY"]; ok && v != "" {
		return v, true
	}
	return "", false
}

// Has reports whether Get would succeed for key.
func (s *DotenvStore) Has(ctx context.Context, key string) bool {
	_, ok := s.Get(ctx, key)
	return ok
}

// Info returns a diagnostic probe for key.
func (s *DotenvStore) Info(ctx context.Context, key string) Info {
	return infoOf(ctx, s, key)
}

// Set always fails: .env files are not rewritten by this store.
func (s *DotenvStore) Set(_ context.Context, key, _ string) error {
	return fmt.Errorf("dotenv store cannot set %q: %w", key, ErrReadOnly)
}

// Delete always fails: .env files are not rewritten by this store.
func (s *DotenvStore) Delete(_ context.Context, key string) error {
	return fmt.Errorf("dotenv store cannot delete %q: %w", key, ErrReadOnly)
}

var _ Store = (*DotenvStore)(nil)
