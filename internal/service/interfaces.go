package service

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-vault-keeper/models"
)

// VaultService is the storage engine of the vault: a persisted collection
// of encrypted records plus a passphrase commitment. It owns the full
// record lifecycle but never holds a passphrase beyond a single call;
// session caching is a separate concern (see internal/session).
type VaultService interface {
	// Initialize creates an empty vault protected by passphrase. The
	// commitment and the empty record collection are persisted in one
	// atomic write. Returns ErrVaultAlreadyInitialized when a vault
	// already exists.
	Initialize(ctx context.Context, passphrase string) error

	// Verify reports whether passphrase matches the stored commitment.
	// It returns false — never an error — on mismatch, absent vault, or
	// corrupted commitment, so the observable result leaks nothing about
	// which condition occurred.
	Verify(ctx context.Context, passphrase string) bool

	// AddRecord encrypts secret under a key derived from passphrase with
	// fresh salt and nonce, appends the record, persists the collection,
	// and returns the new record id.
	AddRecord(ctx context.Context, meta models.RecordMeta, secret, passphrase string) (string, error)

	// ListDecrypted decrypts every stored record independently, deriving
	// each key from that record's own embedded salt. Records that fail to
	// decrypt (wrong passphrase, tampered or malformed blob) are skipped,
	// not fatal, and reported in the skipped list so a shortened result is
	// never silent.
	ListDecrypted(ctx context.Context, passphrase string) ([]models.DecryptedRecord, []models.SkippedRecord, error)

	// UpdateRecord applies a partial update. A new secret is re-encrypted
	// with freshly minted salt and nonce. LastModified is always
	// refreshed. Returns ErrNotFound for an unknown id.
	UpdateRecord(ctx context.Context, id string, update models.RecordUpdate, passphrase string) error

	// DeleteRecord removes the record with the given id. Idempotent:
	// deleting an absent id is not an error.
	DeleteRecord(ctx context.Context, id string) error

	// ExportAll returns a snapshot of the encrypted collection exactly as
	// persisted. It never triggers decryption.
	ExportAll(ctx context.Context) (models.Snapshot, error)

	// ImportAll validates that snapshot is a well-formed encrypted-record
	// collection and replaces the stored collection wholesale. On any
	// validation failure nothing is applied.
	ImportAll(ctx context.Context, snapshot models.Snapshot) error

	// Reset destroys the vault: commitment and records are removed and the
	// lifecycle returns to UNINITIALIZED. Explicit and destructive; there
	// is no other way back.
	Reset(ctx context.Context) error

	// State reports the storage-visible lifecycle state: UNINITIALIZED
	// when no commitment exists, LOCKED otherwise. UNLOCKED is a session
	// property and is reported by the session manager.
	State(ctx context.Context) (models.VaultState, error)
}
