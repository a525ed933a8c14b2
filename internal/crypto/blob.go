// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// minBlobSize is the structural minimum of a decoded blob: a 16-byte salt
// and a 12-byte nonce. Anything shorter cannot be split.
const minBlobSize = SaltSize + NonceSize

// EncodeBlob packs salt ‖ nonce ‖ ciphertext into the Base64 (standard
// encoding) transport string stored in [models.Record]. Packing is kept
// separate from the cipher so either layout or crypto can evolve alone.
func EncodeBlob(salt, nonce, ciphertext []byte) models.EncryptedPassword {
	blob := make([]byte, 0, len(salt)+len(nonce)+len(ciphertext))
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)

	return models.EncryptedPassword(base64.StdEncoding.EncodeToString(blob))
}

// DecodeBlob reverses [EncodeBlob]. It returns [ErrFormat] when the string
// is not valid base64 or the decoded payload is shorter than 28 bytes.
func DecodeBlob(encoded models.EncryptedPassword) (salt, nonce, ciphertext []byte, err error) {
	blob, err := base64.StdEncoding.DecodeString(string(encoded))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: decode base64: %w", ErrFormat, err)
	}

	if len(blob) < minBlobSize {
		return nil, nil, nil, fmt.Errorf("%w: blob is %d bytes, need at least %d", ErrFormat, len(blob), minBlobSize)
	}

	return blob[:SaltSize], blob[SaltSize : SaltSize+NonceSize], blob[SaltSize+NonceSize:], nil
}
