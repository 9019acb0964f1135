package model

import "testing"

func TestNewModelConfig(t *testing.T) {
	cfg := NewModelConfig("gpt4", "openai", "gpt-4")

	if cfg.ID != "gpt4" || cfg.Provider != "openai" || cfg.Model != "gpt-4" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Name != "gpt-4" {
		t.Fatalf("Name = %q, want model identifier default", cfg.Name)
	}
	if cfg.APIKey != "" || cfg.APIBase != "" || cfg.ContextLength != 0 || cfg.Capabilities != nil {
		t.Fatalf("optional fields not absent by default: %+v", cfg)
	}
}

func TestNewModelConfig_Options(t *testing.T) {
	cfg := NewModelConfig("gpt4", "openai", "gpt-4",
		WithName("GPT-4"),
		WithAPIKey("sk-test"),
		WithAPIBase("https://custom.api"),
		WithContextLength(8192),
		WithRoles("chat", "edit"),
		WithCapabilities(FullCapabilities()),
	)

	if cfg.Name != "GPT-4" {
		t.Fatalf("Name = %q", cfg.Name)
	}
	if cfg.APIKey != "sk-test" || cfg.APIBase != "https://custom.api" {
		t.Fatalf("key/base = %q/%q", cfg.APIKey, cfg.APIBase)
	}
	if cfg.ContextLength != 8192 {
		t.Fatalf("ContextLength = %d", cfg.ContextLength)
	}
	if len(cfg.Roles) != 2 {
		t.Fatalf("Roles = %v", cfg.Roles)
	}
	if cfg.Capabilities == nil || !cfg.Capabilities.ToolCalling {
		t.Fatalf("Capabilities = %+v", cfg.Capabilities)
	}
}

func TestModelCapabilities(t *testing.T) {
	full := FullCapabilities()
	if !full.ImageInput || !full.ToolCalling || !full.Streaming {
		t.Fatalf("FullCapabilities() = %+v", full)
	}

	stream := StreamingOnly()
	if stream.ImageInput || stream.ToolCalling || !stream.Streaming {
		t.Fatalf("StreamingOnly() = %+v", stream)
	}
}

func TestListProviders(t *testing.T) {
	providers := ListProviders()
	if len(providers) < 7 {
		t.Fatalf("ListProviders() returned %d entries", len(providers))
	}

	byID := make(map[string]ProviderMetadata, len(providers))
	for _, p := range providers {
		byID[p.ID] = p
	}
	for _, id := range []string{"openai", "anthropic", "gemini", "ollama"} {
		if _, ok := byID[id]; !ok {
			t.Fatalf("provider %q missing", id)
		}
	}

	openai := byID["openai"]
	if openai.DisplayName != "OpenAI" || !openai.RequiresAPIKey {
		t.Fatalf("openai metadata = %+v", openai)
	}
	if openai.DefaultAPIBase != "https://api.openai.com/v1/" {
		t.Fatalf("openai api base = %q", openai.DefaultAPIBase)
	}

	if byID["ollama"].RequiresAPIKey {
		t.Fatalf("ollama should not require an API key")
	}
}

func TestListProviders_ReturnsCopy(t *testing.T) {
	first := ListProviders()
	first[0].ID = "mutated"

	if ListProviders()[0].ID == "mutated" {
		t.Fatalf("mutation of returned slice leaked into the table")
	}
}

func TestLookupProvider(t *testing.T) {
	p, ok := LookupProvider("Anthropic")
	if !ok || p.ID != "anthropic" {
		t.Fatalf("LookupProvider(Anthropic) = (%+v, %v)", p, ok)
	}
	if _, ok := LookupProvider("nonexistent"); ok {
		t.Fatalf("LookupProvider(nonexistent) = true")
	}
}

func TestProviderConfig_EnabledDefault(t *testing.T) {
	p := NewProviderConfig("openai", "gpt-4")
	if !p.IsEnabled() {
		t.Fatalf("new provider config not enabled by default")
	}
	if p.Disabled().IsEnabled() {
		t.Fatalf("Disabled() config still enabled")
	}
	// Disabled returns a copy; the original stays enabled.
	if !p.IsEnabled() {
		t.Fatalf("Disabled() mutated the receiver")
	}
}
