// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// minKDFIterations mirrors the keychain's floor; an explicitly configured
// work factor below it is a mistake worth failing fast on rather than
// silently raising.
const minKDFIterations = 100_000

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case "", BackendBolt, BackendSQLite:
		if cfg.Storage.Backend != "" && cfg.Storage.Path == "" {
			return fmt.Errorf("%w: backend %q requires a path", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	case BackendMemory:
		// no path needed
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Crypto.KDFIterations != 0 && cfg.Crypto.KDFIterations < minKDFIterations {
		return fmt.Errorf("%w: kdf iterations %d below minimum %d", ErrInvalidCryptoConfigs, cfg.Crypto.KDFIterations, minKDFIterations)
	}

	return nil
}
