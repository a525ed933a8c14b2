package models

// VaultState describes the lifecycle position of a vault.
//
// Transitions:
//
//	UNINITIALIZED → (Initialize) → LOCKED → (session open) → UNLOCKED
//	UNLOCKED → (logout/timeout) → LOCKED
//
// Returning to UNINITIALIZED requires an explicit destructive reset.
type VaultState int

const (
	// StateUninitialized means no vault exists yet: neither a passphrase
	// commitment nor a record collection has been persisted.
	StateUninitialized VaultState = iota

	// StateLocked means a vault exists but no verified passphrase is held
	// in memory.
	StateLocked

	// StateUnlocked means a session currently holds a verified passphrase.
	StateUnlocked
)

func (s VaultState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
