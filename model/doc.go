// Package model defines the provider and model configuration data consumed by
// the credential resolver: static provider metadata, concrete model
// instantiations, and per-provider configuration records.
//
// All types here are plain value objects. The package owns no secrets and
// performs no I/O; a ModelConfig may carry an explicit API key or defer to
// store-based resolution (see the resolve package).
package model
