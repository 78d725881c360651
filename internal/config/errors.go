package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN on the client).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key on the server).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero session check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrNegativeDuration indicates that a duration setting is below zero.
	ErrNegativeDuration = errors.New("duration settings must not be negative")
)
