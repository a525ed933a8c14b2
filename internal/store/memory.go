// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
)

// memoryStorage is an in-memory [KeyValueStorage] for tests and ephemeral
// vaults. Nothing survives process exit.
type memoryStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStorage constructs an empty in-memory storage.
func NewMemoryStorage() KeyValueStorage {
	return &memoryStorage{values: make(map[string][]byte)}
}

// Get implements [KeyValueStorage].
func (s *memoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return append([]byte(nil), value...), nil
}

// Set implements [KeyValueStorage].
func (s *memoryStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete implements [KeyValueStorage]. Deleting an absent key succeeds.
func (s *memoryStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// PutAll implements [KeyValueStorage]. The map write happens under a single
// lock acquisition, so concurrent readers observe all entries or none.
func (s *memoryStorage) PutAll(ctx context.Context, values map[string][]byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range values {
		if value == nil {
			delete(s.values, key)
			continue
		}
		s.values[key] = append([]byte(nil), value...)
	}
	return nil
}

// Close implements [KeyValueStorage].
func (s *memoryStorage) Close() error {
	return nil
}
