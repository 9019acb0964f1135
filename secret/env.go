package secret

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// providerEnvVars maps known provider identifiers to their conventional
// environment variable names, tried in order. This table is the extensibility
// point for new providers; direct variable-name lookups always work without it.
var providerEnvVars = map[string][]string{
	"openai":     {"OPENAI_API_KEY"},
	"anthropic":  {"ANTHROPIC_API_KEY"},
	"gemini":     {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"google":     {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"mistral":    {"MISTRAL_API_KEY"},
	"azure":      {"AZURE_API_KEY", "AZURE_OPENAI_API_KEY"},
	"openrouter": {"OPENROUTER_API_KEY"},
	"ollama":     {}, // local-only, no API key
}

// EnvVarsForProvider returns the conventional environment variable names for
// a provider identifier, or nil if the provider is unknown.
func EnvVarsForProvider(provider string) []string {
	vars, ok := providerEnvVars[strings.ToLower(provider)]
	if !ok {
		return nil
	}
	return vars
}

// EnvStore reads secrets from the process environment.
//
// The environment is shared, externally mutable state: EnvStore holds no cache,
// so a mutation by other code is visible on the next call. Each read is
// consistent on its own; no atomicity across calls is guaranteed.
//
// Lookup order for a key:
//  1. the key verbatim as an environment variable name
//  2. the provider alias table (e.g. "openai" -> OPENAI_API_KEY)
//  3. strings.ToUpper(key) + "_API_KEY"
//
// Empty environment values count as absent. The store is read-only; Set and
// Delete always fail with ErrReadOnly because environment-backed credentials
// belong to the process environment, not this library.
type EnvStore struct{}

// NewEnvStore creates an environment-backed store.
func NewEnvStore() *EnvStore { return &EnvStore{} }

// Name returns "env".
func (s *EnvStore) Name() string { return "env" }

// Available always reports true: reading the environment has no failure mode.
func (s *EnvStore) Available(_ context.Context) bool { return true }

// Get resolves key against the environment. See the type doc for lookup order.
func (s *EnvStore) Get(_ context.Context, key string) (string, bool) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v, true
	}

	for _, name := range providerEnvVars[strings.ToLower(key)] {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v, true
		}
	}

	if v, ok := os.LookupEnv(strings.ToUpper(key) + "_API_KEY"); ok && v != "" {
		return v, true
	}
	return "", false
}

// Has reports whether Get would succeed for key.
func (s *EnvStore) Has(ctx context.Context, key string) bool {
	_, ok := s.Get(ctx, key)
	return ok
}

// Info returns a diagnostic probe for key.
func (s *EnvStore) Info(ctx context.Context, key string) Info {
	return infoOf(ctx, s, key)
}

// Set always fails: the environment is not writable through this store.
func (s *EnvStore) Set(_ context.Context, key, _ string) error {
	return fmt.Errorf("env store cannot set %q: %w", key, ErrReadOnly)
}

// Delete always fails: the environment is not writable through this store.
func (s *EnvStore) Delete(_ context.Context, key string) error {
	return fmt.Errorf("env store cannot delete %q: %w", key, ErrReadOnly)
}

var _ Store = (*EnvStore)(nil)
