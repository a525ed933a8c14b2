package session

import "errors"

var (
	// ErrVerificationFailed is the single generic signal for a failed
	// unlock. It never distinguishes wrong passphrase, absent vault, or
	// corrupted commitment.
	ErrVerificationFailed = errors.New("passphrase verification failed")

	// ErrSessionInvalid is returned when a token does not resolve to a
	// live session: unknown, expired, explicitly invalidated, or
	// discarded after a failed restore.
	ErrSessionInvalid = errors.New("session invalid or expired")
)
