// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported storage backend names for [Storage.Backend].
const (
	BackendBolt   = "bbolt"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-vault-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the durable key-value backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Crypto holds key-derivation tuning.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Session holds session cache lifetime settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage selects the durable key-value backend holding the vault.
type Storage struct {
	// Backend is one of "bbolt" (default), "sqlite" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the database file path. Ignored by the memory backend.
	// Env: STORAGE_PATH
	Path string `env:"PATH"`
}

// Crypto holds key-derivation tuning for the keychain.
type Crypto struct {
	// KDFIterations is the PBKDF2-SHA256 work factor. Zero means "use the
	// built-in default"; non-zero values below 100000 fail validation.
	// Env: CRYPTO_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`
}

// Session holds the in-memory session cache settings.
type Session struct {
	// TTL is how long an opened session stays valid (e.g. "15m").
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`

	// SweepInterval is how often the janitor removes expired sessions
	// (e.g. "1m").
	// Env: SESSION_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
