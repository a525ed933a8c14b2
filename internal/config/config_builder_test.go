// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesSourcesFirstWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{Backend: BackendMemory}},
		&StructuredConfig{Storage: Storage{Backend: BackendSQLite, Path: "/tmp/vault.db"}, Session: Session{TTL: 10 * time.Minute}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value per field.
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/vault.db", cfg.Storage.Path)
	assert.Equal(t, 10*time.Minute, cfg.Session.TTL)
}

func TestBuild_ValidationRejectsUnknownBackend(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Backend: "postgres"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_ValidationRejectsMissingPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Backend: BackendBolt}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_ValidationRejectsLowKDFIterations(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Crypto: Crypto{KDFIterations: 1000}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidCryptoConfigs)
}

func TestBuild_ZeroKDFIterationsMeansDefault(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{Backend: BackendMemory}})

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Zero(t, cfg.Crypto.KDFIterations)
}

func TestWithJSON_MergesFileValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"storage": {"backend": "sqlite", "path": "/var/lib/vault/vault.db"},
		"session": {"ttl": "25m", "sweep_interval": "45s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/vault/vault.db", cfg.Storage.Path)
	assert.Equal(t, 25*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 45*time.Second, cfg.Session.SweepInterval)
}

func TestWithJSON_MissingFileFailsBuild(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	_, err := b.build()
	assert.Error(t, err)
}
