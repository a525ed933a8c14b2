package store

//go:generate mockgen -source=interfaces.go -destination=../mock/key_value_storage_mock.go -package=mock

import "context"

// Storage keys used by the vault engine. The whole engine persists exactly
// two logical values: the passphrase commitment and the encrypted record
// collection.
const (
	// KeyCommitment addresses the passphrase commitment blob.
	KeyCommitment = "commitment"

	// KeyRecords addresses the JSON-encoded encrypted record collection.
	KeyRecords = "records"
)

// KeyValueStorage is the durable collaborator of the vault engine: a small
// key-value surface with atomic multi-key writes. Implementations must be
// safe for concurrent use.
type KeyValueStorage interface {
	// Get returns the value stored under key, or ErrKeyNotFound when the
	// key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// PutAll applies every entry in values as one atomic write: either all
	// entries land or none do. A nil value deletes the key. Needed so that
	// vault initialization can never leave a commitment without a record
	// collection or vice versa after a crash.
	PutAll(ctx context.Context, values map[string][]byte) error

	// Close releases the underlying resources.
	Close() error
}
