package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

import "github.com/MKhiriev/go-vault-keeper/models"

// KeyChainService owns every cryptographic operation of the vault. It knows
// nothing about storage or sessions; its only job is deriving keys and
// sealing/opening secrets.
//
// Scheme per secret:
//
//	salt  = GenerateSalt()                 (fresh, 16 bytes)
//	nonce = GenerateNonce()                (fresh, 12 bytes)
//	key   = DeriveKey(passphrase, salt)    (PBKDF2-SHA256, 256-bit)
//	blob  = salt ‖ nonce ‖ Encrypt(secret, key, nonce)
//
// Every encryption mints its own salt and nonce, so keys are unlinkable
// across records even under a single passphrase and nonce reuse cannot
// occur under a given key.
type KeyChainService interface {
	// GenerateSalt returns 16 fresh random bytes from the OS CSPRNG.
	// The salt is not secret; it is stored inside the blob it salted.
	GenerateSalt() ([]byte, error)

	// GenerateNonce returns 12 fresh random bytes from the OS CSPRNG for
	// one AES-GCM invocation.
	GenerateNonce() ([]byte, error)

	// DeriveKey stretches a passphrase into a 256-bit key using the salt.
	// Deterministic for a fixed (passphrase, salt) pair; never fails.
	DeriveKey(passphrase string, salt []byte) []byte

	// Encrypt seals plaintext under key and nonce with AES-256-GCM and
	// returns ciphertext ‖ tag.
	Encrypt(plaintext, key, nonce []byte) ([]byte, error)

	// Decrypt opens ciphertext ‖ tag. Returns ErrIntegrity when the tag
	// does not verify (tampering or wrong key).
	Decrypt(ciphertext, key, nonce []byte) ([]byte, error)

	// SealSecret runs the full per-secret scheme: fresh salt and nonce,
	// key derivation, encryption, and packing into the transport string.
	SealSecret(secret, passphrase string) (models.EncryptedPassword, error)

	// OpenSecret unpacks a transport blob, derives the key from the blob's
	// own embedded salt, and decrypts. Returns ErrFormat for a malformed
	// blob and ErrIntegrity for a failed tag check.
	OpenSecret(blob models.EncryptedPassword, passphrase string) (string, error)

	// ComputeCommitment produces the one-way passphrase commitment stored
	// alongside the vault: salt ‖ SHA-256(salt ‖ passphrase).
	ComputeCommitment(passphrase string) ([]byte, error)

	// VerifyCommitment recomputes the commitment with the stored salt and
	// compares in constant time. Returns false for a mismatch or a
	// structurally invalid commitment; it never reveals which.
	VerifyCommitment(passphrase string, commitment []byte) bool
}
