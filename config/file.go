package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/llmkeys/model"
)

// Provider reads and mutates provider configuration.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Errors: unknown provider names fail with ErrProviderNotFound; adding a
//     duplicate fails with ErrProviderExists.
type Provider interface {
	Providers(ctx context.Context) ([]model.ProviderConfig, error)
	AddProvider(ctx context.Context, cfg model.ProviderConfig) error
	UpdateProvider(ctx context.Context, name string, cfg model.ProviderConfig) error
	RemoveProvider(ctx context.Context, name string) error
}

// Level identifies which configuration file a FileProvider manages.
type Level string

const (
	// LevelUser is the per-user config at ~/.config/llmkeys/config.yaml.
	LevelUser Level = "user"
	// LevelWorkspace is the per-workspace config at .llmkeys/config.yaml.
	LevelWorkspace Level = "workspace"
)

// Defaults holds the default provider/model selection.
type Defaults struct {
	Provider string `yaml:"provider,omitempty"`
	Model    string `yaml:"model,omitempty"`
}

// File is the on-disk configuration document.
type File struct {
	Providers []model.ProviderConfig `yaml:"providers,omitempty"`
	Defaults  *Defaults              `yaml:"defaults,omitempty"`
}

// FileProvider persists provider configuration in a YAML file. A missing file
// reads as an empty configuration; the file and its parent directories are
// created on first save.
type FileProvider struct {
	path  string
	level Level

	mu sync.Mutex
}

// NewUserFileProvider manages the user-level configuration file.
func NewUserFileProvider() (*FileProvider, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("config: resolving home directory: %w", err)
	}
	path := filepath.Join(home, ".config", "llmkeys", "config.yaml")
	return &FileProvider{path: path, level: LevelUser}, nil
}

// NewWorkspaceFileProvider manages the configuration file of the workspace
// rooted at dir.
func NewWorkspaceFileProvider(dir string) *FileProvider {
	return &FileProvider{
		path:  filepath.Join(dir, ".llmkeys", "config.yaml"),
		level: LevelWorkspace,
	}
}

// NewFileProvider manages an explicit configuration file path.
func NewFileProvider(path string, level Level) *FileProvider {
	return &FileProvider{path: path, level: level}
}

// Path returns the managed file path.
func (p *FileProvider) Path() string { return p.path }

// Level returns the configuration level.
func (p *FileProvider) Level() Level { return p.level }

func (p *FileProvider) source() model.ConfigSource {
	if p.level == LevelWorkspace {
		return model.SourceWorkspaceConfig
	}
	return model.SourceUserConfig
}

// Load reads the whole configuration document. A missing file yields an empty
// document, not an error.
func (p *FileProvider) Load() (File, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.load()
}

func (p *FileProvider) load() (File, error) {
	data, err := os.ReadFile(p.path)
	if os.IsNotExist(err) {
		return File{}, nil
	}
	if err != nil {
		return File{}, fmt.Errorf("config: reading %s: %w", p.path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parsing %s: %w", p.path, err)
	}
	for i := range f.Providers {
		f.Providers[i].Source = p.source()
	}
	return f, nil
}

// Save writes the whole configuration document, creating parent directories
// as needed.
func (p *FileProvider) Save(f File) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.save(f)
}

func (p *FileProvider) save(f File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("config: encoding %s: %w", p.path, err)
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return fmt.Errorf("config: creating %s: %w", filepath.Dir(p.path), err)
	}
	if err := os.WriteFile(p.path, data, 0o600); err != nil {
		return fmt.Errorf("config: writing %s: %w", p.path, err)
	}
	return nil
}

// Providers returns all configured providers, tagged with this file's source.
func (p *FileProvider) Providers(_ context.Context) ([]model.ProviderConfig, error) {
	f, err := p.Load()
	if err != nil {
		return nil, err
	}
	return f.Providers, nil
}

// AddProvider appends a new provider entry.
func (p *FileProvider) AddProvider(_ context.Context, cfg model.ProviderConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := p.load()
	if err != nil {
		return err
	}
	for _, existing := range f.Providers {
		if existing.Name == cfg.Name {
			return fmt.Errorf("provider %q: %w", cfg.Name, ErrProviderExists)
		}
	}
	f.Providers = append(f.Providers, cfg)
	return p.save(f)
}

// UpdateProvider replaces the entry registered under name.
func (p *FileProvider) UpdateProvider(_ context.Context, name string, cfg model.ProviderConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := p.load()
	if err != nil {
		return err
	}
	for i, existing := range f.Providers {
		if existing.Name == name {
			f.Providers[i] = cfg
			return p.save(f)
		}
	}
	return fmt.Errorf("provider %q: %w", name, ErrProviderNotFound)
}

// RemoveProvider deletes the entry registered under name.
func (p *FileProvider) RemoveProvider(_ context.Context, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	f, err := p.load()
	if err != nil {
		return err
	}
	for i, existing := range f.Providers {
		if existing.Name == name {
			f.Providers = append(f.Providers[:i], f.Providers[i+1:]...)
			return p.save(f)
		}
	}
	return fmt.Errorf("provider %q: %w", name, ErrProviderNotFound)
}

var _ Provider = (*FileProvider)(nil)
