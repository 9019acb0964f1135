package vaultstore

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/vault-client-go"
	"github.com/hashicorp/vault-client-go/schema"
	"golang.org/x/sync/singleflight"

	"github.com/jonwraymond/llmkeys/secret"
)

// DefaultRequestTimeout bounds every Vault request.
const DefaultRequestTimeout = 5 * time.Second

// defaultFields are tried in order when a logical key carries no explicit
// "#field" selector.
var defaultFields = []string{"value", "api_key"}

// Config configures a Store.
type Config struct {
	// Address is the Vault server URL. Falls back to VAULT_ADDR.
	Address string
	// Token authenticates requests. Falls back to VAULT_TOKEN.
	Token string
	// Namespace is the Vault Enterprise namespace. Falls back to
	// VAULT_NAMESPACE. Optional.
	Namespace string
	// Mount is the KV v2 mount path. Default: "secret".
	Mount string
	// PathPrefix is prepended to every logical key. Default: "llmkeys".
	PathPrefix string
	// RequestTimeout bounds each request. Default: DefaultRequestTimeout.
	RequestTimeout time.Duration
}

// Store resolves secrets from HashiCorp Vault KV v2. It implements
// secret.Store and is safe for concurrent use; concurrent reads of the same
// key are collapsed into a single request.
//
// A logical key "openai" maps to <PathPrefix>/openai and reads the "value"
// field (then "api_key"). An explicit selector such as "openai#token" reads
// the named field instead.
type Store struct {
	client  *vault.Client
	mount   string
	prefix  string
	timeout time.Duration

	group singleflight.Group

	mu      sync.Mutex
	lastErr error
}

// New creates a Vault-backed store.
func New(cfg Config) (*Store, error) {
	address := cfg.Address
	if env := os.Getenv("VAULT_ADDR"); env != "" {
		address = env
	}
	if address == "" {
		return nil, fmt.Errorf("vaultstore: address is required (set Config.Address or VAULT_ADDR)")
	}

	token := cfg.Token
	if env := os.Getenv("VAULT_TOKEN"); env != "" {
		token = env
	}
	if token == "" {
		return nil, fmt.Errorf("vaultstore: token is required (set Config.Token or VAULT_TOKEN)")
	}

	namespace := cfg.Namespace
	if env := os.Getenv("VAULT_NAMESPACE"); env != "" {
		namespace = env
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	client, err := vault.New(
		vault.WithAddress(strings.TrimRight(address, "/")),
		vault.WithRequestTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("vaultstore: creating client: %w", err)
	}
	if err := client.SetToken(token); err != nil {
		return nil, fmt.Errorf("vaultstore: setting token: %w", err)
	}
	if namespace != "" {
		if err := client.SetNamespace(namespace); err != nil {
			return nil, fmt.Errorf("vaultstore: setting namespace: %w", err)
		}
	}

	mount := cfg.Mount
	if mount == "" {
		mount = "secret"
	}
	prefix := strings.Trim(cfg.PathPrefix, "/")
	if prefix == "" {
		prefix = "llmkeys"
	}

	return &Store{
		client:  client,
		mount:   mount,
		prefix:  prefix,
		timeout: timeout,
	}, nil
}

// Name returns "vault".
func (s *Store) Name() string { return "vault" }

// LastError returns the most recent backend fault, for logging. Faults never
// surface through Get/Has: they degrade to absence per the store contract.
func (s *Store) LastError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *Store) recordErr(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// splitKey separates an optional "#field" selector from a logical key.
func splitKey(key string) (secretPath, field string) {
	secretPath, field, _ = strings.Cut(key, "#")
	return secretPath, field
}

func (s *Store) secretPath(key string) string {
	return path.Join(s.prefix, key)
}

// Available probes the Vault server's health endpoint within the request
// timeout. It reports false rather than returning an error.
func (s *Store) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.client.System.ReadHealthStatus(ctx); err != nil {
		s.recordErr(fmt.Errorf("vaultstore: health probe: %w", err))
		return false
	}
	return true
}

// Get reads the logical key from Vault. Missing secrets, missing fields, and
// backend faults all report absent; faults are retained via LastError.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.read(ctx, key)
	})
	if err != nil {
		if !vault.IsErrorStatus(err, http.StatusNotFound) {
			s.recordErr(err)
		}
		return "", false
	}
	return v.(string), true
}

var errFieldNotFound = fmt.Errorf("vaultstore: field not found in secret data")

func (s *Store) read(ctx context.Context, key string) (string, error) {
	keyPath, field := splitKey(key)

	resp, err := s.client.Secrets.KvV2Read(ctx, s.secretPath(keyPath), vault.WithMountPath(s.mount))
	if err != nil {
		return "", fmt.Errorf("vaultstore: reading %s: %w", keyPath, err)
	}

	fields := defaultFields
	if field != "" {
		fields = []string{field}
	}
	for _, f := range fields {
		if raw, ok := resp.Data.Data[f]; ok {
			if value, ok := raw.(string); ok && value != "" {
				return value, nil
			}
		}
	}
	return "", errFieldNotFound
}

// Has reports whether Get would succeed for key.
func (s *Store) Has(ctx context.Context, key string) bool {
	_, ok := s.Get(ctx, key)
	return ok
}

// Info returns a diagnostic probe for key.
func (s *Store) Info(ctx context.Context, key string) secret.Info {
	if s.Has(ctx, key) {
		return secret.NewInfo(true, s.Name())
	}
	return secret.InfoNotFound()
}

// Set writes the value under the logical key. Without a selector the "value"
// field is written; existing fields of the secret are replaced.
func (s *Store) Set(ctx context.Context, key, value string) error {
	keyPath, field := splitKey(key)
	if field == "" {
		field = defaultFields[0]
	}

	_, err := s.client.Secrets.KvV2Write(ctx, s.secretPath(keyPath), schema.KvV2WriteRequest{
		Data: map[string]any{field: value},
	}, vault.WithMountPath(s.mount))
	if err != nil {
		return fmt.Errorf("vaultstore: writing %s: %w", keyPath, err)
	}
	s.group.Forget(key)
	return nil
}

// Delete removes the latest version of the secret under the logical key.
// Deleting a missing secret is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	keyPath, _ := splitKey(key)

	_, err := s.client.Secrets.KvV2Delete(ctx, s.secretPath(keyPath), vault.WithMountPath(s.mount))
	if err != nil && !vault.IsErrorStatus(err, http.StatusNotFound) {
		return fmt.Errorf("vaultstore: deleting %s: %w", keyPath, err)
	}
	s.group.Forget(key)
	return nil
}

var _ secret.Store = (*Store)(nil)
