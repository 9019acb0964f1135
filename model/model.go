package model

// ModelConfig describes a concrete model instantiation. Once constructed it is
// treated as immutable configuration: the resolver reads it, nothing writes it.
//
// APIKey is optional. When empty, the resolver obtains a credential from the
// registered secret stores using Provider as the logical key.
type ModelConfig struct {
	// ID uniquely identifies this configuration.
	ID string `json:"id" yaml:"id"`
	// Name is the display name; defaults to Model.
	Name string `json:"name" yaml:"name"`
	// Provider is the provider identifier ("openai", "anthropic", ...).
	Provider string `json:"provider" yaml:"provider"`
	// Model is the model identifier as the provider's API expects it.
	Model string `json:"model" yaml:"model"`
	// APIKey, when set, is used verbatim and bypasses store resolution.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	// APIBase overrides the provider's default endpoint.
	APIBase string `json:"api_base,omitempty" yaml:"api_base,omitempty"`
	// Roles lists the roles this model can fulfill ("chat", "edit", ...).
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`
	// ContextLength is the maximum context window in tokens; 0 means unknown.
	ContextLength int `json:"context_length,omitempty" yaml:"context_length,omitempty"`
	// Capabilities describes what the model supports; nil means unknown.
	Capabilities *ModelCapabilities `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
}

// ModelOption customizes a ModelConfig at construction.
type ModelOption func(*ModelConfig)

// WithName sets the display name.
func WithName(name string) ModelOption {
	return func(c *ModelConfig) { c.Name = name }
}

// WithAPIKey sets an explicit API key, bypassing store resolution.
func WithAPIKey(key string) ModelOption {
	return func(c *ModelConfig) { c.APIKey = key }
}

// WithAPIBase overrides the provider's default API endpoint.
func WithAPIBase(base string) ModelOption {
	return func(c *ModelConfig) { c.APIBase = base }
}

// WithContextLength sets the maximum context window in tokens.
func WithContextLength(tokens int) ModelOption {
	return func(c *ModelConfig) { c.ContextLength = tokens }
}

// WithRoles sets the roles this model can fulfill.
func WithRoles(roles ...string) ModelOption {
	return func(c *ModelConfig) { c.Roles = roles }
}

// WithCapabilities sets the model's capability flags.
func WithCapabilities(caps ModelCapabilities) ModelOption {
	return func(c *ModelConfig) { c.Capabilities = &caps }
}

// NewModelConfig creates a model configuration. Name defaults to the model
// identifier.
func NewModelConfig(id, provider, mdl string, opts ...ModelOption) ModelConfig {
	c := ModelConfig{
		ID:       id,
		Name:     mdl,
		Provider: provider,
		Model:    mdl,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ModelCapabilities records what a model supports.
type ModelCapabilities struct {
	ImageInput  bool `json:"image_input" yaml:"image_input"`
	ToolCalling bool `json:"tool_calling" yaml:"tool_calling"`
	Streaming   bool `json:"streaming" yaml:"streaming"`
}

// FullCapabilities returns capabilities with every flag enabled.
func FullCapabilities() ModelCapabilities {
	return ModelCapabilities{ImageInput: true, ToolCalling: true, Streaming: true}
}

// StreamingOnly returns capabilities with only streaming enabled.
func StreamingOnly() ModelCapabilities {
	return ModelCapabilities{Streaming: true}
}
