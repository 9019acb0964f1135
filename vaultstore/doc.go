// Package vaultstore provides a HashiCorp Vault KV v2 backend for the secret
// store layer.
//
// It is the reference plugin store: registered at runtime, network-backed,
// and read-write. Logical keys map to KV v2 secrets under a mount and path
// prefix; a "#field" suffix selects a field within the secret data. All
// requests are bounded by the client's request timeout, so a slow or
// unreachable Vault degrades to "unavailable" instead of stalling credential
// resolution.
package vaultstore
