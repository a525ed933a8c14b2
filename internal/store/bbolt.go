// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// vaultBucket is the single bucket holding every vault key.
var vaultBucket = []byte("vault")

// boltStorage is the default embedded [KeyValueStorage] backend. Every
// write runs inside a bbolt transaction, so PutAll is atomic for free.
type boltStorage struct {
	db *bolt.DB
}

// NewBoltStorage opens (or creates) the bbolt database at path and ensures
// the vault bucket exists.
func NewBoltStorage(path string) (KeyValueStorage, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningStorage, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(vaultBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: create bucket: %w", ErrOpeningStorage, err)
	}

	return &boltStorage{db: db}, nil
}

// Get implements [KeyValueStorage].
func (s *boltStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(vaultBucket).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
		}
		// The slice is only valid inside the transaction.
		value = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set implements [KeyValueStorage].
func (s *boltStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(vaultBucket).Put([]byte(key), value)
	})
}

// Delete implements [KeyValueStorage]. Deleting an absent key succeeds.
func (s *boltStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(vaultBucket).Delete([]byte(key))
	})
}

// PutAll implements [KeyValueStorage]. All entries are applied inside one
// bbolt write transaction.
func (s *boltStorage) PutAll(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(vaultBucket)
		for key, value := range values {
			if value == nil {
				if err := bucket.Delete([]byte(key)); err != nil {
					return err
				}
				continue
			}
			if err := bucket.Put([]byte(key), value); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close implements [KeyValueStorage].
func (s *boltStorage) Close() error {
	return s.db.Close()
}
