package store

import "errors"

// Sentinel errors returned by storage backends. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when the requested key has no
	// stored value.
	ErrKeyNotFound = errors.New("key not found")

	// ErrOpeningStorage is returned (wrapped) when a storage backend
	// cannot be opened: bad path, locked file, failed migration.
	ErrOpeningStorage = errors.New("error opening storage")

	// ErrExecutingQuery is returned (wrapped) when a read against the
	// SQLite backend fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned (wrapped) when a DML statement
	// against the SQLite backend fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned (wrapped) when the database
	// driver cannot start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned (wrapped) when committing an
	// open transaction fails. The transaction is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")
)
