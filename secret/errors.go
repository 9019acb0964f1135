package secret

import "errors"

// Sentinel errors for store and registry operations.
var (
	// Store errors
	ErrReadOnly = errors.New("secret: store is read-only")

	// Registry errors
	ErrDuplicateStore = errors.New("secret: store name already registered")
	ErrUnknownStore   = errors.New("secret: store is not registered")
	ErrBuiltinStore   = errors.New("secret: built-in stores cannot be unregistered")
)
