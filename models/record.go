package models

import "time"

// EncryptedPassword is an opaque transport string holding an encrypted
// secret: base64(salt ‖ nonce ‖ ciphertext+tag). The storage layer never
// interprets it.
type EncryptedPassword string

// Record is a single vault item. All descriptive fields are stored in
// plain form; the secret itself exists only inside EncryptedPassword.
type Record struct {
	// ID is the unique identifier of the record (UUID).
	ID string `json:"id"`

	// WebSite is the site or service the credential belongs to.
	WebSite string `json:"website"`

	// Username is the login identifier for the site.
	Username string `json:"username"`

	// EncryptedPassword holds the secret field in encrypted form.
	// The plaintext secret is never durably stored.
	EncryptedPassword EncryptedPassword `json:"encryptedPassword"`

	// URL is an optional exact address for the credential.
	URL *string `json:"url,omitempty"`

	// Category is a user-assigned grouping label.
	Category string `json:"category"`

	// Notes contains optional free-form annotations.
	Notes *string `json:"notes,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"createdAt"`

	// LastModified is the timestamp of the last change to any field.
	LastModified time.Time `json:"lastModified"`
}

// DecryptedRecord is a Record together with its decrypted secret. It only
// ever exists in memory; the Password field is excluded from serialization.
type DecryptedRecord struct {
	Record

	// Password is the decrypted secret field.
	Password string `json:"-"`
}

// RecordMeta carries the plaintext metadata supplied when creating a record.
type RecordMeta struct {
	WebSite  string  `json:"website"`
	Username string  `json:"username"`
	URL      *string `json:"url,omitempty"`
	Category string  `json:"category"`
	Notes    *string `json:"notes,omitempty"`
}

// RecordUpdate describes a partial update. Nil fields are left untouched.
// A non-nil Password causes the secret to be re-encrypted with fresh
// randomness.
type RecordUpdate struct {
	WebSite  *string `json:"website,omitempty"`
	Username *string `json:"username,omitempty"`
	URL      *string `json:"url,omitempty"`
	Category *string `json:"category,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Password *string `json:"-"`
}

// SkippedRecord reports one record dropped during bulk decryption, so that
// a shortened listing is never silent about what was lost.
type SkippedRecord struct {
	// ID is the identifier of the record that could not be decrypted.
	ID string `json:"id"`

	// Reason is a short human-readable cause (wrong key, tampered blob,
	// malformed packing).
	Reason string `json:"reason"`
}

// Snapshot is the export/import unit: the encrypted record collection
// exactly as persisted, ciphertext preserved.
type Snapshot []Record
