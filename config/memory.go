package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/jonwraymond/llmkeys/model"
)

// MemoryProvider holds provider configuration in memory. Useful for tests and
// for host applications that manage configuration themselves.
type MemoryProvider struct {
	mu        sync.RWMutex
	providers []model.ProviderConfig
}

// NewMemoryProvider creates a provider seeded with the given entries.
func NewMemoryProvider(providers ...model.ProviderConfig) *MemoryProvider {
	seeded := make([]model.ProviderConfig, len(providers))
	copy(seeded, providers)
	for i := range seeded {
		seeded[i].Source = model.SourceRuntime
	}
	return &MemoryProvider{providers: seeded}
}

// Providers returns all configured providers.
func (p *MemoryProvider) Providers(_ context.Context) ([]model.ProviderConfig, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]model.ProviderConfig, len(p.providers))
	copy(out, p.providers)
	return out, nil
}

// AddProvider appends a new provider entry.
func (p *MemoryProvider) AddProvider(_ context.Context, cfg model.ProviderConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.providers {
		if existing.Name == cfg.Name {
			return fmt.Errorf("provider %q: %w", cfg.Name, ErrProviderExists)
		}
	}
	cfg.Source = model.SourceRuntime
	p.providers = append(p.providers, cfg)
	return nil
}

// UpdateProvider replaces the entry registered under name.
func (p *MemoryProvider) UpdateProvider(_ context.Context, name string, cfg model.ProviderConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.providers {
		if existing.Name == name {
			cfg.Source = model.SourceRuntime
			p.providers[i] = cfg
			return nil
		}
	}
	return fmt.Errorf("provider %q: %w", name, ErrProviderNotFound)
}

// RemoveProvider deletes the entry registered under name.
func (p *MemoryProvider) RemoveProvider(_ context.Context, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.providers {
		if existing.Name == name {
			p.providers = append(p.providers[:i], p.providers[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("provider %q: %w", name, ErrProviderNotFound)
}

var _ Provider = (*MemoryProvider)(nil)
