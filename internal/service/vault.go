// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/crypto"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
	"github.com/MKhiriev/go-vault-keeper/models"
)

// maxDecryptWorkers bounds the goroutines decrypting records concurrently
// in ListDecrypted. Key derivation dominates the cost and is CPU-bound, so
// more workers than cores buys nothing.
const maxDecryptWorkers = 8

// vaultService is the private implementation of [VaultService].
type vaultService struct {
	storage   store.KeyValueStorage
	keychain  crypto.KeyChainService
	ids       *utils.UUIDGenerator
	validator validators.SnapshotValidator
	logger    *logger.Logger

	// mu guards every load-mutate-persist cycle so concurrent mutations
	// cannot produce a lost update.
	mu sync.Mutex
}

// NewVaultService constructs a [VaultService] over the given storage and
// keychain.
func NewVaultService(storage store.KeyValueStorage, keychain crypto.KeyChainService, logger *logger.Logger) VaultService {
	return &vaultService{
		storage:   storage,
		keychain:  keychain,
		ids:       utils.NewUUIDGenerator(),
		validator: validators.NewSnapshotValidator(),
		logger:    logger,
	}
}

// Initialize implements [VaultService]. The commitment and the empty record
// collection land in a single PutAll, so a crash can never leave one
// without the other.
func (v *vaultService) Initialize(ctx context.Context, passphrase string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	_, err := v.storage.Get(ctx, store.KeyCommitment)
	if err == nil {
		return ErrVaultAlreadyInitialized
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		return fmt.Errorf("check existing vault: %w", err)
	}

	commitment, err := v.keychain.ComputeCommitment(passphrase)
	if err != nil {
		return fmt.Errorf("compute commitment: %w", err)
	}

	records, err := json.Marshal(models.Snapshot{})
	if err != nil {
		return fmt.Errorf("encode empty collection: %w", err)
	}

	err = v.storage.PutAll(ctx, map[string][]byte{
		store.KeyCommitment: commitment,
		store.KeyRecords:    records,
	})
	if err != nil {
		return fmt.Errorf("persist new vault: %w", err)
	}

	v.logger.Info().Msg("vault initialized")
	return nil
}

// Verify implements [VaultService]. Absent vault, corrupted commitment and
// wrong passphrase all collapse into the same observable false.
func (v *vaultService) Verify(ctx context.Context, passphrase string) bool {
	commitment, err := v.storage.Get(ctx, store.KeyCommitment)
	if err != nil {
		return false
	}
	return v.keychain.VerifyCommitment(passphrase, commitment)
}

// AddRecord implements [VaultService].
func (v *vaultService) AddRecord(ctx context.Context, meta models.RecordMeta, secret, passphrase string) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	records, err := v.loadRecords(ctx)
	if err != nil {
		return "", err
	}

	blob, err := v.keychain.SealSecret(secret, passphrase)
	if err != nil {
		return "", fmt.Errorf("seal secret: %w", err)
	}

	now := time.Now().UTC()
	record := models.Record{
		ID:                v.ids.Generate(),
		WebSite:           meta.WebSite,
		Username:          meta.Username,
		EncryptedPassword: blob,
		URL:               meta.URL,
		Category:          meta.Category,
		Notes:             meta.Notes,
		CreatedAt:         now,
		LastModified:      now,
	}

	records = append(records, record)
	if err := v.persistRecords(ctx, records); err != nil {
		return "", err
	}

	v.logger.Debug().Str("record_id", record.ID).Int("total", len(records)).Msg("record added")
	return record.ID, nil
}

// ListDecrypted implements [VaultService]. Records are decrypted
// concurrently; each one derives its key from its own embedded salt, so
// there is no shared mutable state between workers. Input order is
// preserved in the result.
func (v *vaultService) ListDecrypted(ctx context.Context, passphrase string) ([]models.DecryptedRecord, []models.SkippedRecord, error) {
	v.mu.Lock()
	records, err := v.loadRecords(ctx)
	v.mu.Unlock()
	if err != nil {
		return nil, nil, err
	}

	type slot struct {
		decrypted *models.DecryptedRecord
		skipped   *models.SkippedRecord
	}
	slots := make([]slot, len(records))

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxDecryptWorkers)

	for i, record := range records {
		if err := ctx.Err(); err != nil {
			// Timeout/cancel bounds the whole bulk operation; workers
			// already running finish their fixed-cost crypto call.
			wg.Wait()
			return nil, nil, err
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, record models.Record) {
			defer wg.Done()
			defer func() { <-sem }()

			secret, err := v.keychain.OpenSecret(record.EncryptedPassword, passphrase)
			if err != nil {
				slots[i].skipped = &models.SkippedRecord{ID: record.ID, Reason: skipReason(err)}
				return
			}
			slots[i].decrypted = &models.DecryptedRecord{Record: record, Password: secret}
		}(i, record)
	}
	wg.Wait()

	decrypted := make([]models.DecryptedRecord, 0, len(records))
	var skipped []models.SkippedRecord
	for _, s := range slots {
		switch {
		case s.decrypted != nil:
			decrypted = append(decrypted, *s.decrypted)
		case s.skipped != nil:
			skipped = append(skipped, *s.skipped)
		}
	}

	if len(skipped) > 0 {
		v.logger.Warn().
			Int("stored", len(records)).
			Int("decrypted", len(decrypted)).
			Int("skipped", len(skipped)).
			Msg("some records could not be decrypted")
	}

	return decrypted, skipped, nil
}

// UpdateRecord implements [VaultService].
func (v *vaultService) UpdateRecord(ctx context.Context, id string, update models.RecordUpdate, passphrase string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	records, err := v.loadRecords(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	record := &records[idx]
	if update.WebSite != nil {
		record.WebSite = *update.WebSite
	}
	if update.Username != nil {
		record.Username = *update.Username
	}
	if update.URL != nil {
		record.URL = update.URL
	}
	if update.Category != nil {
		record.Category = *update.Category
	}
	if update.Notes != nil {
		record.Notes = update.Notes
	}
	if update.Password != nil {
		// Fresh salt and nonce; prior randomness is never reused.
		blob, err := v.keychain.SealSecret(*update.Password, passphrase)
		if err != nil {
			return fmt.Errorf("seal secret: %w", err)
		}
		record.EncryptedPassword = blob
	}
	record.LastModified = time.Now().UTC()

	if err := v.persistRecords(ctx, records); err != nil {
		return err
	}

	v.logger.Debug().Str("record_id", id).Msg("record updated")
	return nil
}

// DeleteRecord implements [VaultService]. Deleting an absent id succeeds
// without touching storage.
func (v *vaultService) DeleteRecord(ctx context.Context, id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	records, err := v.loadRecords(ctx)
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, record := range records {
		if record.ID != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return nil
	}

	if err := v.persistRecords(ctx, kept); err != nil {
		return err
	}

	v.logger.Debug().Str("record_id", id).Msg("record deleted")
	return nil
}

// ExportAll implements [VaultService].
func (v *vaultService) ExportAll(ctx context.Context) (models.Snapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	records, err := v.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return models.Snapshot(records), nil
}

// ImportAll implements [VaultService]. Validation runs over the whole
// snapshot before anything is written, so a bad snapshot changes nothing.
func (v *vaultService) ImportAll(ctx context.Context, snapshot models.Snapshot) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Importing into a vault that does not exist yet has no commitment to
	// verify against later; refuse.
	if _, err := v.loadRecords(ctx); err != nil {
		return err
	}

	if err := v.validator.Validate(snapshot); err != nil {
		return fmt.Errorf("validate snapshot: %w", err)
	}

	if err := v.persistRecords(ctx, snapshot); err != nil {
		return err
	}

	v.logger.Info().Int("records", len(snapshot)).Msg("collection imported")
	return nil
}

// Reset implements [VaultService]. Both keys are removed in one atomic
// batch.
func (v *vaultService) Reset(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	err := v.storage.PutAll(ctx, map[string][]byte{
		store.KeyCommitment: nil,
		store.KeyRecords:    nil,
	})
	if err != nil {
		return fmt.Errorf("reset vault: %w", err)
	}

	v.logger.Info().Msg("vault reset to uninitialized")
	return nil
}

// State implements [VaultService].
func (v *vaultService) State(ctx context.Context) (models.VaultState, error) {
	_, err := v.storage.Get(ctx, store.KeyCommitment)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.StateUninitialized, nil
	}
	if err != nil {
		return models.StateUninitialized, fmt.Errorf("read commitment: %w", err)
	}
	return models.StateLocked, nil
}

// loadRecords reads and decodes the persisted collection. Callers must hold
// v.mu when the result feeds a mutation.
func (v *vaultService) loadRecords(ctx context.Context) ([]models.Record, error) {
	raw, err := v.storage.Get(ctx, store.KeyRecords)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil, ErrVaultNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("load record collection: %w", err)
	}

	var records []models.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decode record collection: %w", crypto.ErrFormat, err)
	}
	return records, nil
}

// persistRecords encodes and writes the whole collection.
func (v *vaultService) persistRecords(ctx context.Context, records []models.Record) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode record collection: %w", err)
	}
	if err := v.storage.Set(ctx, store.KeyRecords, raw); err != nil {
		return fmt.Errorf("persist record collection: %w", err)
	}
	return nil
}

// skipReason maps a decryption error onto the short cause stored in a
// [models.SkippedRecord].
func skipReason(err error) string {
	switch {
	case errors.Is(err, crypto.ErrFormat):
		return "malformed blob"
	case errors.Is(err, crypto.ErrIntegrity):
		return "integrity check failed"
	default:
		return "decryption failed"
	}
}
