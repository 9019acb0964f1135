// Package secret provides the pluggable secret store layer used to resolve
// LLM provider credentials.
//
// It provides:
//   - The Store capability interface (see Store)
//   - Built-in backends: EnvStore, MemoryStore, DotenvStore
//   - Composition wrappers: ChainStore, CachedStore, TimeoutStore
//   - A Registry of named stores with runtime plugin registration
//
// Logical keys are provider- or caller-chosen identifiers (e.g. "openai"),
// distinct from whatever physical key a backend uses internally. Absence of a
// key is never an error; mutation of a read-only backend always is.
package secret
