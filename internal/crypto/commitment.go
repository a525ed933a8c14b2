// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"io"
)

// commitmentSize is the stored commitment length: salt ‖ SHA-256 digest.
const commitmentSize = SaltSize + sha256.Size

// ComputeCommitment implements [KeyChainService]. It produces the one-way
// value used to verify the passphrase without storing it:
//
//	salt(16) ‖ SHA-256(salt ‖ passphrase)
//
// NOTE: this is a single fast hash, not the slow PBKDF2 used for record
// keys, so the stored commitment is weaker against offline guessing than
// the record blobs. Hardening it to the full KDF is a product decision
// with a real unlock-latency cost; see DESIGN.md before changing it.
func (k *keyChainService) ComputeCommitment(passphrase string) ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(passphrase))

	return append(salt, h.Sum(nil)...), nil
}

// VerifyCommitment implements [KeyChainService]. It recomputes the digest
// with the stored salt and compares in constant time. A structurally
// invalid commitment (wrong length, e.g. truncated by storage corruption)
// verifies as false exactly like a wrong passphrase does, so the caller's
// observable result never distinguishes "wrong passphrase" from "corrupted
// commitment".
func (k *keyChainService) VerifyCommitment(passphrase string, commitment []byte) bool {
	if len(commitment) != commitmentSize {
		return false
	}

	h := sha256.New()
	h.Write(commitment[:SaltSize])
	h.Write([]byte(passphrase))

	return subtle.ConstantTimeCompare(h.Sum(nil), commitment[SaltSize:]) == 1
}
