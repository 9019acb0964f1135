// Package config loads and persists provider configuration.
//
// Two implementations of the Provider interface are included: FileProvider,
// backed by a YAML file at the user level (~/.config/llmkeys/config.yaml) or
// workspace level (.llmkeys/config.yaml), and MemoryProvider for tests and
// embedding. Configuration files hold provider entries and defaults, never
// secret values; credentials are resolved separately via the secret stores.
package config
