// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// health-vault binaries. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the request integrity key and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings. The server treats the
	// DSN as a PostgreSQL URI, the client as a SQLite file path.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the backend the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds terminal portal settings.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle, request integrity and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify access tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header on appointment booking).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server listens.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the outbound backend client.
type Adapter struct {
	// HTTPAddress is the base address of the health-vault server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// SessionCheckInterval is how often the client re-checks the backend
	// session for expiry.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// Client holds settings of the terminal portal.
type Client struct {
	// SendCodeDelay is the simulated delay of the "send OTP" step.
	// Env: CLIENT_SEND_CODE_DELAY
	SendCodeDelay time.Duration `env:"SEND_CODE_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables (including those loaded from a .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig returns the merged configuration validated for the
// server binary.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
