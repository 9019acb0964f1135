package model

import "strings"

// ProviderMetadata is the static, read-only description of a known provider.
// One immutable record exists per provider.
type ProviderMetadata struct {
	// ID is the provider identifier ("openai", "anthropic", ...). It doubles
	// as the logical key used when resolving credentials from secret stores.
	ID string `json:"id" yaml:"id"`
	// DisplayName is the human-readable provider name.
	DisplayName string `json:"display_name" yaml:"display_name"`
	// DefaultAPIBase is the provider's default API endpoint.
	DefaultAPIBase string `json:"default_api_base" yaml:"default_api_base"`
	// RequiresAPIKey reports whether the provider needs a credential at all.
	// Local-only providers (ollama) do not.
	RequiresAPIKey bool `json:"requires_api_key" yaml:"requires_api_key"`
	// DefaultModels lists well-known models for the provider, if any.
	DefaultModels []DefaultModel `json:"default_models,omitempty" yaml:"default_models,omitempty"`
}

// DefaultModel describes a well-known model offered by a provider.
type DefaultModel struct {
	ID            string            `json:"id" yaml:"id"`
	Name          string            `json:"name" yaml:"name"`
	ContextLength int               `json:"context_length" yaml:"context_length"`
	Capabilities  ModelCapabilities `json:"capabilities" yaml:"capabilities"`
}

// builtinProviders is the ordered table of providers this library knows out of
// the box. Unknown providers still work: the resolver treats them as
// OpenAI-compatible endpoints that require a key.
var builtinProviders = []ProviderMetadata{
	{ID: "openai", DisplayName: "OpenAI", DefaultAPIBase: "https://api.openai.com/v1/", RequiresAPIKey: true},
	{ID: "anthropic", DisplayName: "Anthropic", DefaultAPIBase: "https://api.anthropic.com/", RequiresAPIKey: true},
	{ID: "gemini", DisplayName: "Google Gemini", DefaultAPIBase: "https://generativelanguage.googleapis.com/", RequiresAPIKey: true},
	{ID: "ollama", DisplayName: "Ollama", DefaultAPIBase: "http://localhost:11434/", RequiresAPIKey: false},
	{ID: "mistral", DisplayName: "Mistral", DefaultAPIBase: "https://api.mistral.ai/v1/", RequiresAPIKey: true},
	{ID: "azure", DisplayName: "Azure OpenAI", DefaultAPIBase: "https://your-resource.openai.azure.com/", RequiresAPIKey: true},
	{ID: "openrouter", DisplayName: "OpenRouter", DefaultAPIBase: "https://openrouter.ai/api/v1/", RequiresAPIKey: true},
	{ID: "groq", DisplayName: "Groq", DefaultAPIBase: "https://api.groq.com/openai/v1/", RequiresAPIKey: true},
	{ID: "xai", DisplayName: "xAI", DefaultAPIBase: "https://api.x.ai/v1/", RequiresAPIKey: true},
	{ID: "deepseek", DisplayName: "DeepSeek", DefaultAPIBase: "https://api.deepseek.com/", RequiresAPIKey: true},
	{ID: "cohere", DisplayName: "Cohere", DefaultAPIBase: "https://api.cohere.ai/", RequiresAPIKey: true},
	{ID: "fireworks", DisplayName: "Fireworks AI", DefaultAPIBase: "https://api.fireworks.ai/inference/v1/", RequiresAPIKey: true},
	{ID: "together", DisplayName: "Together AI", DefaultAPIBase: "https://api.together.xyz/v1/", RequiresAPIKey: true},
}

// ListProviders returns metadata for every known provider, in stable order.
// The returned slice is a copy; callers may not mutate the table.
func ListProviders() []ProviderMetadata {
	out := make([]ProviderMetadata, len(builtinProviders))
	copy(out, builtinProviders)
	return out
}

// LookupProvider returns the metadata for a provider id, case-insensitively.
func LookupProvider(id string) (ProviderMetadata, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, p := range builtinProviders {
		if p.ID == id {
			return p, true
		}
	}
	return ProviderMetadata{}, false
}
