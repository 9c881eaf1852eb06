package config

import "errors"

// ErrEmptySigningSecret is fatal: the server refuses to start without a
// token signing secret.
var ErrEmptySigningSecret = errors.New("JWT_SECRET is empty")

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid token settings
	// (for example, a negative ttl).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidSecurityConfigs indicates an out of range bcrypt cost.
	ErrInvalidSecurityConfigs = errors.New("invalid security configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing address or negative timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
