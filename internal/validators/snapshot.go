// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"

	"github.com/MKhiriev/go-vault-keeper/internal/crypto"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// snapshotValidator is the default implementation of [SnapshotValidator].
// Validation is purely structural: ids are present and unique, and every
// blob unpacks. Decryption is deliberately never attempted, so import works
// without a passphrase.
type snapshotValidator struct {
}

// NewSnapshotValidator constructs the default [SnapshotValidator].
func NewSnapshotValidator() SnapshotValidator {
	return &snapshotValidator{}
}

// Validate implements [SnapshotValidator].
func (v *snapshotValidator) Validate(snapshot models.Snapshot) error {
	seen := make(map[string]struct{}, len(snapshot))

	for i, record := range snapshot {
		if record.ID == "" {
			return fmt.Errorf("%w: record %d has no id", crypto.ErrFormat, i)
		}
		if _, dup := seen[record.ID]; dup {
			return fmt.Errorf("%w: duplicate record id %s", crypto.ErrFormat, record.ID)
		}
		seen[record.ID] = struct{}{}

		if _, _, _, err := crypto.DecodeBlob(record.EncryptedPassword); err != nil {
			return fmt.Errorf("record %d (%s): %w", i, record.ID, err)
		}
	}

	return nil
}
