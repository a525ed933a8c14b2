package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoltStorage(t *testing.T) KeyValueStorage {
	t.Helper()

	s, err := NewBoltStorage(filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestBoltStorage_SetGetRoundTrip(t *testing.T) {
	s := newTestBoltStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyCommitment, []byte("commitment-bytes")))

	got, err := s.Get(ctx, KeyCommitment)
	require.NoError(t, err)
	assert.Equal(t, []byte("commitment-bytes"), got)
}

func TestBoltStorage_GetAbsentKey(t *testing.T) {
	s := newTestBoltStorage(t)

	_, err := s.Get(context.Background(), KeyRecords)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoltStorage_DeleteIsIdempotent(t *testing.T) {
	s := newTestBoltStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, KeyRecords, []byte("[]")))
	require.NoError(t, s.Delete(ctx, KeyRecords))
	require.NoError(t, s.Delete(ctx, KeyRecords))

	_, err := s.Get(ctx, KeyRecords)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoltStorage_PutAllWritesAndDeletes(t *testing.T) {
	s := newTestBoltStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "stale", []byte("old")))

	err := s.PutAll(ctx, map[string][]byte{
		KeyCommitment: []byte("c"),
		KeyRecords:    []byte("[]"),
		"stale":       nil, // nil value deletes
	})
	require.NoError(t, err)

	got, err := s.Get(ctx, KeyCommitment)
	require.NoError(t, err)
	assert.Equal(t, []byte("c"), got)

	got, err = s.Get(ctx, KeyRecords)
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), got)

	_, err = s.Get(ctx, "stale")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestBoltStorage_ValueSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vault.db")
	ctx := context.Background()

	s, err := NewBoltStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, KeyCommitment, []byte("persisted")))
	require.NoError(t, s.Close())

	s, err = NewBoltStorage(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, KeyCommitment)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}

func TestBoltStorage_ContextCancelled(t *testing.T) {
	s := newTestBoltStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, KeyCommitment)
	assert.ErrorIs(t, err, context.Canceled)

	assert.ErrorIs(t, s.Set(ctx, KeyCommitment, []byte("x")), context.Canceled)
}
