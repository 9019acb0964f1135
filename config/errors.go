package config

import "errors"

// Sentinel errors for configuration operations.
var (
	ErrProviderNotFound = errors.New("config: provider not found")
	ErrProviderExists   = errors.New("config: provider already exists")
)
