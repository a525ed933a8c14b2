package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStorage(t *testing.T) (*sqliteStorage, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return newSQLiteStorageWithDB(db), mock
}

func TestSQLiteStorage_Get(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM vault_kv WHERE key = ?").
		WithArgs(KeyCommitment).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("commitment-bytes")))

	got, err := s.Get(context.Background(), KeyCommitment)
	require.NoError(t, err)
	assert.Equal(t, []byte("commitment-bytes"), got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_GetAbsentKey(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectQuery("SELECT value FROM vault_kv WHERE key = ?").
		WithArgs(KeyRecords).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Get(context.Background(), KeyRecords)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_SetUpserts(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("INSERT INTO vault_kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		WithArgs(KeyRecords, []byte("[]")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), KeyRecords, []byte("[]")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_Delete(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectExec("DELETE FROM vault_kv WHERE key = ?").
		WithArgs(KeyRecords).
		WillReturnResult(sqlmock.NewResult(0, 0)) // absent key: still no error

	require.NoError(t, s.Delete(context.Background(), KeyRecords))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_PutAllCommitsTransaction(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		WithArgs(KeyCommitment, []byte("c")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.PutAll(context.Background(), map[string][]byte{KeyCommitment: []byte("c")})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteStorage_PutAllRollsBackOnFailure(t *testing.T) {
	s, mock := newTestSQLiteStorage(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO vault_kv (key,value) VALUES (?,?) ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		WithArgs(KeyCommitment, []byte("c")).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := s.PutAll(context.Background(), map[string][]byte{KeyCommitment: []byte("c")})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}
