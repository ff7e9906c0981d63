package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, missing token sign key or zero token duration).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
