package validators

//go:generate mockgen -source=interfaces.go -destination=../mock/snapshot_validator_mock.go -package=mock

import "github.com/MKhiriev/go-vault-keeper/models"

// SnapshotValidator checks that an imported snapshot is a well-formed
// encrypted-record collection before it replaces the stored one.
type SnapshotValidator interface {
	// Validate returns nil when every record in the snapshot is
	// structurally sound, or an error wrapping crypto.ErrFormat naming
	// the first offending record.
	Validate(snapshot models.Snapshot) error
}
