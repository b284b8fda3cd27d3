package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidSessionConfigs indicates invalid session settings
	// (for example, an unknown backend name, or the redis backend selected
	// without a redis address).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
