package secret

import "context"

// ChainStore composes multiple stores with fallback reads. Reads try each
// store in order and return the first hit; writes go to a single designated
// write store (by default the first).
type ChainStore struct {
	stores     []Store
	writeIndex int
}

// NewChainStore creates a chain over stores, tried in order for reads. The
// first store receives writes. At least one store is required.
func NewChainStore(stores ...Store) *ChainStore {
	if len(stores) == 0 {
		panic("secret: ChainStore requires at least one store")
	}
	return &ChainStore{stores: stores}
}

// WithWriteStore designates the store at index as the write target.
func (s *ChainStore) WithWriteStore(index int) *ChainStore {
	if index < 0 || index >= len(s.stores) {
		panic("secret: write store index out of range")
	}
	s.writeIndex = index
	return s
}

// Stores returns the chained stores in read order.
func (s *ChainStore) Stores() []Store { return s.stores }

// WriteStore returns the store that receives Set and Delete calls.
func (s *ChainStore) WriteStore() Store { return s.stores[s.writeIndex] }

// FindStore returns the first available store that has key, or nil.
func (s *ChainStore) FindStore(ctx context.Context, key string) Store {
	for _, st := range s.stores {
		if st.Available(ctx) && st.Has(ctx, key) {
			return st
		}
	}
	return nil
}

// Name returns "chain".
func (s *ChainStore) Name() string { return "chain" }

// Available reports true if any chained store is available.
func (s *ChainStore) Available(ctx context.Context) bool {
	for _, st := range s.stores {
		if st.Available(ctx) {
			return true
		}
	}
	return false
}

// Get returns the first value found across the chain, skipping unavailable
// stores.
func (s *ChainStore) Get(ctx context.Context, key string) (string, bool) {
	for _, st := range s.stores {
		if !st.Available(ctx) {
			continue
		}
		if v, ok := st.Get(ctx, key); ok {
			return v, true
		}
	}
	return "", false
}

// Has reports whether any chained store has key.
func (s *ChainStore) Has(ctx context.Context, key string) bool {
	return s.FindStore(ctx, key) != nil
}

// Info reports which chained store resolves key, so diagnostics can see
// through the chain.
func (s *ChainStore) Info(ctx context.Context, key string) Info {
	if st := s.FindStore(ctx, key); st != nil {
		return NewInfo(true, st.Name())
	}
	return InfoNotFound()
}

// Set writes to the designated write store.
func (s *ChainStore) Set(ctx context.Context, key, value string) error {
	return s.WriteStore().Set(ctx, key, value)
}

// Delete deletes from the designated write store.
func (s *ChainStore) Delete(ctx context.Context, key string) error {
	return s.WriteStore().Delete(ctx, key)
}

var _ Store = (*ChainStore)(nil)
