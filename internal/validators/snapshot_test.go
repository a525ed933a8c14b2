// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vault-keeper/internal/crypto"
	"github.com/MKhiriev/go-vault-keeper/models"
)

func sealedBlob(t *testing.T) models.EncryptedPassword {
	t.Helper()

	keychain := crypto.NewKeyChainService(crypto.MinIterations)
	blob, err := keychain.SealSecret("secret", "passphrase")
	if err != nil {
		t.Fatalf("SealSecret() error = %v", err)
	}
	return blob
}

func TestValidate_EmptySnapshot(t *testing.T) {
	v := NewSnapshotValidator()

	assert.NoError(t, v.Validate(models.Snapshot{}))
	assert.NoError(t, v.Validate(nil))
}

func TestValidate_WellFormedSnapshot(t *testing.T) {
	blob := sealedBlob(t)
	v := NewSnapshotValidator()

	snapshot := models.Snapshot{
		{ID: "a", WebSite: "one.example.com", EncryptedPassword: blob},
		{ID: "b", WebSite: "two.example.com", EncryptedPassword: blob},
	}

	assert.NoError(t, v.Validate(snapshot))
}

func TestValidate_MissingID(t *testing.T) {
	v := NewSnapshotValidator()

	snapshot := models.Snapshot{{EncryptedPassword: sealedBlob(t)}}

	err := v.Validate(snapshot)
	assert.ErrorIs(t, err, crypto.ErrFormat)
}

func TestValidate_DuplicateID(t *testing.T) {
	blob := sealedBlob(t)
	v := NewSnapshotValidator()

	snapshot := models.Snapshot{
		{ID: "a", EncryptedPassword: blob},
		{ID: "a", EncryptedPassword: blob},
	}

	err := v.Validate(snapshot)
	assert.ErrorIs(t, err, crypto.ErrFormat)
}

func TestValidate_MalformedBlob(t *testing.T) {
	v := NewSnapshotValidator()

	snapshot := models.Snapshot{{ID: "a", EncryptedPassword: "not-a-blob"}}

	err := v.Validate(snapshot)
	assert.ErrorIs(t, err, crypto.ErrFormat)
}
