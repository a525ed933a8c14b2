// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vault-keeper/migrations"
)

// sqliteStorage is the SQLite-backed [KeyValueStorage]. It exists for
// deployments that already ship a SQLite file and want the vault in the
// same place; bbolt remains the default backend.
type sqliteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens (or creates) the SQLite database at path and runs
// the embedded schema migrations.
func NewSQLiteStorage(path string) (KeyValueStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningStorage, err)
	}

	if err := migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrOpeningStorage, err)
	}

	return &sqliteStorage{db: db}, nil
}

// newSQLiteStorageWithDB wraps an already-open database handle. Used by
// tests to inject go-sqlmock.
func newSQLiteStorageWithDB(db *sql.DB) *sqliteStorage {
	return &sqliteStorage{db: db}
}

// Get implements [KeyValueStorage].
func (s *sqliteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From("vault_kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set implements [KeyValueStorage].
func (s *sqliteStorage) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := upsertQuery(key, value)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// Delete implements [KeyValueStorage]. Deleting an absent key succeeds.
func (s *sqliteStorage) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("vault_kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// PutAll implements [KeyValueStorage]. All entries are applied inside one
// SQL transaction.
func (s *sqliteStorage) PutAll(ctx context.Context, values map[string][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	for key, value := range values {
		var query string
		var args []any

		if value == nil {
			query, args, err = sq.Delete("vault_kv").Where(sq.Eq{"key": key}).ToSql()
		} else {
			query, args, err = upsertQuery(key, value)
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// Close implements [KeyValueStorage].
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

func upsertQuery(key string, value []byte) (string, []any, error) {
	query, args, err := sq.Insert("vault_kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return query, args, nil
}
