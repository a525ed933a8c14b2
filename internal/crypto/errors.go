package crypto

import "errors"

var (
	// ErrIntegrity is returned when an authentication tag does not verify:
	// either the blob was tampered with or the key (and therefore the
	// passphrase it was derived from) is wrong. The two causes are
	// deliberately indistinguishable.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrFormat is returned when an encrypted blob cannot be unpacked:
	// invalid base64 or a decoded length below the structural minimum of
	// 28 bytes (16-byte salt + 12-byte nonce).
	ErrFormat = errors.New("malformed encrypted blob")
)
