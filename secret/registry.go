package secret

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Descriptor is the registry's public view of a store. It is fixed at
// registration and never carries secret values.
type Descriptor struct {
	Name        string
	Description string
	IsPlugin    bool
}

type registryEntry struct {
	store      Store
	descriptor Descriptor
}

// Registry is a catalog of named stores: the built-ins (env, then memory) plus
// any plugin stores registered at runtime. Listing order is stable: built-ins
// first, then plugins in registration order. The registry indexes live store
// instances and holds no secret data itself.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
	order   []string
	builtin map[string]bool
}

// RegisterOption customizes plugin registration.
type RegisterOption func(*Descriptor)

// WithDescription sets the descriptive text shown by List.
func WithDescription(desc string) RegisterOption {
	return func(d *Descriptor) { d.Description = desc }
}

// NewRegistry creates a registry with the built-in env and memory stores
// pre-registered. Built-ins can never be unregistered or shadowed.
func NewRegistry() *Registry {
	r := &Registry{
		entries: make(map[string]registryEntry),
		builtin: make(map[string]bool),
	}
	r.addBuiltin(NewEnvStore(), "Read API keys from environment variables")
	r.addBuiltin(NewMemoryStore(), "In-memory storage for testing")
	return r
}

func (r *Registry) addBuiltin(store Store, description string) {
	name := store.Name()
	r.entries[name] = registryEntry{
		store:      store,
		descriptor: Descriptor{Name: name, Description: description},
	}
	r.order = append(r.order, name)
	r.builtin[name] = true
}

// Register adds a plugin store under its reported name. It fails with
// ErrDuplicateStore when the name collides with any existing store; built-in
// names are reserved. Registration is atomic with respect to concurrent
// lookups.
func (r *Registry) Register(store Store, opts ...RegisterOption) error {
	if store == nil {
		return fmt.Errorf("secret: cannot register nil store")
	}
	name := strings.TrimSpace(store.Name())
	if name == "" {
		return fmt.Errorf("secret: cannot register store with empty name")
	}

	desc := Descriptor{Name: name, IsPlugin: true}
	for _, opt := range opts {
		opt(&desc)
	}
	// Name and plugin flag are fixed at registration.
	desc.Name = name
	desc.IsPlugin = true

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("store %q: %w", name, ErrDuplicateStore)
	}
	r.entries[name] = registryEntry{store: store, descriptor: desc}
	r.order = append(r.order, name)
	return nil
}

// Unregister removes a plugin store by name. Built-ins are protected and
// removing them fails with ErrBuiltinStore; removing an unknown name fails
// with ErrUnknownStore.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.builtin[name] {
		return fmt.Errorf("store %q: %w", name, ErrBuiltinStore)
	}
	if _, exists := r.entries[name]; !exists {
		return fmt.Errorf("store %q: %w", name, ErrUnknownStore)
	}
	delete(r.entries, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Lookup returns the live store registered under name.
func (r *Registry) Lookup(name string) (Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return entry.store, true
}

// List returns descriptors for every registered store: built-ins first
// (env, memory), then plugins in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].descriptor)
	}
	return out
}

// Stores returns the live store instances in the same order as List.
func (r *Registry) Stores() []Store {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Store, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].store)
	}
	return out
}

// Has reports whether a store is registered under name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[name]
	return ok
}

// Availability probes every registered store concurrently and reports each
// store's liveness by name. Slow stores should be registered behind a
// TimeoutStore so a hung backend cannot stall the probe.
func (r *Registry) Availability(ctx context.Context) map[string]bool {
	stores := r.Stores()

	var mu sync.Mutex
	out := make(map[string]bool, len(stores))

	g, ctx := errgroup.WithContext(ctx)
	for _, st := range stores {
		g.Go(func() error {
			ok := st.Available(ctx)
			mu.Lock()
			out[st.Name()] = ok
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // probes never return errors
	return out
}

// DefaultRegistry is the process-wide registry used when no explicit registry
// is supplied to the resolver.
var DefaultRegistry = NewRegistry()
