package service

import (
	"errors"
	"fmt"
)

var (
	// ErrVaultState is the base error for operations invalid in the
	// current lifecycle state. Match with errors.Is; the wrapped variants
	// below say which transition was refused.
	ErrVaultState = errors.New("operation invalid for vault state")

	// ErrVaultAlreadyInitialized is returned by Initialize when a vault
	// already exists. Re-initializing requires an explicit Reset first.
	ErrVaultAlreadyInitialized = fmt.Errorf("%w: vault already initialized", ErrVaultState)

	// ErrVaultNotInitialized is returned when an operation needs an
	// existing vault and none has been created.
	ErrVaultNotInitialized = fmt.Errorf("%w: vault not initialized", ErrVaultState)

	// ErrNotFound is returned when an operation references an unknown
	// record id.
	ErrNotFound = errors.New("record not found")
)
