package secret

import "context"

// Info is the result of probing a store for a key. It is a snapshot built
// fresh on every call and never carries the secret value itself.
type Info struct {
	// Available reports whether the key resolves in the probed store.
	Available bool
	// Source is the name of the store that answered the probe, or "none"
	// when no store could.
	Source string
}

// NewInfo builds an Info for the given availability and source store.
func NewInfo(available bool, source string) Info {
	return Info{Available: available, Source: source}
}

// InfoNotFound is the Info reported when a key resolves nowhere.
func InfoNotFound() Info {
	return Info{Available: false, Source: "none"}
}

// Store is a named backend that resolves logical keys to secret values.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Absence: Get returns ("", false) for a missing key; missing is normal
//     and never an error. Has(key) must agree with Get's second result.
//   - Read-only backends: Set and Delete must return an error wrapping
//     ErrReadOnly, never silently no-op, and reads must never mutate the
//     backing data.
//   - Values must not be logged by implementations.
type Store interface {
	// Name returns the stable store identifier used as the registry key and
	// as Info.Source.
	Name() string

	// Available is a cheap liveness probe. Ambient and in-memory backends
	// always report true; network-backed stores may probe reachability and
	// report false instead of returning errors.
	Available(ctx context.Context) bool

	// Get returns the value for key, or ("", false) if the key does not
	// resolve in this store.
	Get(ctx context.Context, key string) (string, bool)

	// Has reports whether Get would succeed for key. Implementations may
	// compute it more cheaply than a full Get.
	Has(ctx context.Context, key string) bool

	// Info returns a diagnostic probe for key without exposing its value.
	Info(ctx context.Context, key string) Info

	// Set inserts or overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error on
	// writable stores.
	Delete(ctx context.Context, key string) error
}

// infoOf is the default Info composition shared by the built-in stores.
func infoOf(ctx context.Context, s Store, key string) Info {
	if s.Has(ctx, key) {
		return NewInfo(true, s.Name())
	}
	return InfoNotFound()
}
