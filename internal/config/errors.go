package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (unknown backend name, or a file-backed backend without a path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidCryptoConfigs indicates an explicit KDF work factor below
	// the minimum the keychain accepts.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
)
