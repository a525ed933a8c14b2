// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds verified passphrases in memory for the lifetime of
// one working session. Nothing here ever touches durable storage: sessions
// are keyed by a random token that is independent of the passphrase, and
// the whole cache disappears with the process.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// tokenBytes is the session token entropy in bytes (hex-encoded to 64
// characters).
const tokenBytes = 32

// DefaultTTL bounds a session's lifetime unless the deployment overrides it.
const DefaultTTL = 15 * time.Minute

type entry struct {
	passphrase string
	expiresAt  time.Time
}

// Manager is the in-memory session cache. Safe for concurrent use.
type Manager struct {
	vault  service.VaultService
	ttl    time.Duration
	logger *logger.Logger

	mu       sync.Mutex
	sessions map[string]entry
}

// NewManager constructs a session manager over the given vault. A
// non-positive ttl falls back to [DefaultTTL].
func NewManager(vault service.VaultService, ttl time.Duration, logger *logger.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		vault:    vault,
		ttl:      ttl,
		logger:   logger,
		sessions: make(map[string]entry),
	}
}

// Open verifies the passphrase against the vault and, on success, caches it
// under a fresh random token. The vault moves to UNLOCKED for the holder of
// that token. Failure is always the generic [ErrVerificationFailed].
func (m *Manager) Open(ctx context.Context, passphrase string) (string, error) {
	if !m.vault.Verify(ctx, passphrase) {
		return "", ErrVerificationFailed
	}

	token, err := newToken()
	if err != nil {
		return "", fmt.Errorf("mint session token: %w", err)
	}

	m.mu.Lock()
	m.sessions[token] = entry{
		passphrase: passphrase,
		expiresAt:  time.Now().Add(m.ttl),
	}
	m.mu.Unlock()

	m.logger.Debug().Msg("session opened")
	return token, nil
}

// Passphrase resolves a token to its cached passphrase. Expired sessions
// are removed lazily on access.
func (m *Manager) Passphrase(token string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[token]
	if !ok {
		return "", ErrSessionInvalid
	}
	if time.Now().After(e.expiresAt) {
		delete(m.sessions, token)
		return "", ErrSessionInvalid
	}
	return e.passphrase, nil
}

// Invalidate removes the session for token. The vault returns to LOCKED for
// that holder. Invalidating an unknown token is a no-op.
func (m *Manager) Invalidate(token string) {
	m.mu.Lock()
	_, existed := m.sessions[token]
	delete(m.sessions, token)
	m.mu.Unlock()

	if existed {
		m.logger.Debug().Msg("session invalidated")
	}
}

// Restore re-validates an existing session: the cached passphrase must
// still verify against the commitment and every stored record must still
// decrypt. Any failure — including a single record reported as skipped by
// the probe — discards the session and returns [ErrSessionInvalid],
// forcing the caller back to LOCKED.
func (m *Manager) Restore(ctx context.Context, token string) error {
	passphrase, err := m.Passphrase(token)
	if err != nil {
		return err
	}

	if !m.vault.Verify(ctx, passphrase) {
		m.Invalidate(token)
		return ErrSessionInvalid
	}

	if _, skipped, err := m.vault.ListDecrypted(ctx, passphrase); err != nil || len(skipped) > 0 {
		m.Invalidate(token)
		return ErrSessionInvalid
	}

	return nil
}

// State reports the lifecycle state as seen by the holder of token:
// UNLOCKED while the session is live, otherwise whatever the storage layer
// reports (LOCKED or UNINITIALIZED).
func (m *Manager) State(ctx context.Context, token string) (models.VaultState, error) {
	if _, err := m.Passphrase(token); err == nil {
		return models.StateUnlocked, nil
	}
	return m.vault.State(ctx)
}

// Sweep removes every expired session and returns how many were dropped.
// Called periodically by the janitor worker.
func (m *Manager) Sweep() int {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	dropped := 0
	for token, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, token)
			dropped++
		}
	}
	return dropped
}

func newToken() (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
