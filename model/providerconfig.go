package model

// ConfigSource records where a provider configuration came from.
type ConfigSource string

const (
	SourceUserConfig      ConfigSource = "user"      // ~/.config/llmkeys/config.yaml
	SourceWorkspaceConfig ConfigSource = "workspace" // .llmkeys/config.yaml
	SourceRuntime         ConfigSource = "runtime"   // set programmatically
	SourceUnknown         ConfigSource = "unknown"
)

// ProviderConfig is a user-editable provider entry as it appears in a
// configuration file. Enabled defaults to true when the field is omitted.
type ProviderConfig struct {
	Name    string   `json:"name" yaml:"name"`
	Enabled *bool    `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	APIBase string   `json:"api_base,omitempty" yaml:"api_base,omitempty"`
	Models  []string `json:"models,omitempty" yaml:"models,omitempty"`
	// Source is filled by the loader, never serialized.
	Source ConfigSource `json:"-" yaml:"-"`
}

// NewProviderConfig creates an enabled provider entry.
func NewProviderConfig(name string, models ...string) ProviderConfig {
	return ProviderConfig{Name: name, Models: models, Source: SourceUnknown}
}

// IsEnabled reports whether the provider is enabled; omitted means enabled.
func (p ProviderConfig) IsEnabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// Disabled returns a copy with the provider switched off.
func (p ProviderConfig) Disabled() ProviderConfig {
	off := false
	p.Enabled = &off
	return p
}
