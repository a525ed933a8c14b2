// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-vault-keeper/models"
)

const (
	// SaltSize is the length of the key-derivation salt in bytes.
	SaltSize = 16

	// NonceSize is the AES-GCM nonce length in bytes.
	NonceSize = 12

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// MinIterations is the lowest PBKDF2 work factor the service accepts.
	MinIterations = 100_000

	// DefaultIterations is the PBKDF2-SHA256 work factor used unless the
	// deployment overrides it (OWASP 2023 recommendation).
	DefaultIterations = 210_000
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// PBKDF2 iteration count. Stored in the struct so it can be tuned per
	// deployment target without touching call sites.
	iterations int
}

// NewKeyChainService constructs a [KeyChainService] with the given PBKDF2
// iteration count. Counts below [MinIterations] (including zero, the usual
// "use the default" value) are raised to [DefaultIterations].
func NewKeyChainService(iterations int) KeyChainService {
	if iterations < MinIterations {
		iterations = DefaultIterations
	}
	return &keyChainService{iterations: iterations}
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG. Returns an error only if the random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateNonce implements [KeyChainService]. It reads 12 random bytes from
// the OS CSPRNG. Returns an error only if the random read fails.
func (k *keyChainService) GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return nonce, nil
}

// DeriveKey implements [KeyChainService]. It derives a 256-bit key from the
// passphrase and salt using PBKDF2-SHA256 with the iteration count stored in
// the receiver. The key exists only in memory and is never persisted.
func (k *keyChainService) DeriveKey(passphrase string, salt []byte) []byte {
	return pbkdf2.Key([]byte(passphrase), salt, k.iterations, KeySize, sha256.New)
}

// Encrypt implements [KeyChainService]. It seals plaintext with AES-256-GCM
// under the given key and nonce and returns ciphertext ‖ tag. The nonce must
// be fresh for every call; [SealSecret] guarantees that for the normal path.
func (k *keyChainService) Encrypt(plaintext, key, nonce []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt implements [KeyChainService]. It opens ciphertext ‖ tag produced
// by [keyChainService.Encrypt]. A failed tag check is reported as
// [ErrIntegrity]: either the blob was modified or the key is wrong, and the
// caller must not be able to tell which.
func (k *keyChainService) Decrypt(ciphertext, key, nonce []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIntegrity, err)
	}
	return plaintext, nil
}

// SealSecret implements [KeyChainService]. It mints a fresh salt and nonce,
// derives a key, encrypts the secret, and packs everything into the
// transport string. Each call produces an unlinkable blob even for an
// identical (secret, passphrase) pair.
func (k *keyChainService) SealSecret(secret, passphrase string) (models.EncryptedPassword, error) {
	salt, err := k.GenerateSalt()
	if err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	nonce, err := k.GenerateNonce()
	if err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	key := k.DeriveKey(passphrase, salt)

	ciphertext, err := k.Encrypt([]byte(secret), key, nonce)
	if err != nil {
		return "", fmt.Errorf("encrypt secret: %w", err)
	}

	return EncodeBlob(salt, nonce, ciphertext), nil
}

// OpenSecret implements [KeyChainService]. It unpacks the blob, derives the
// key from the blob's own embedded salt, and decrypts. Errors pass through
// unchanged so callers can distinguish [ErrFormat] from [ErrIntegrity] with
// errors.Is.
func (k *keyChainService) OpenSecret(blob models.EncryptedPassword, passphrase string) (string, error) {
	salt, nonce, ciphertext, err := DecodeBlob(blob)
	if err != nil {
		return "", err
	}

	key := k.DeriveKey(passphrase, salt)

	plaintext, err := k.Decrypt(ciphertext, key, nonce)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// newGCM builds an AES-256-GCM AEAD from a 32-byte key.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
