package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreSetGet(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("alpha", `{"x":1}`))
	got, err := s.Get("alpha")
	assert.NoError(t, err)
	assert.Equal(t, `{"x":1}`, got)

	// Overwrite replaces the previous value.
	require.NoError(t, s.Set("alpha", `{"x":2}`))
	got, err = s.Get("alpha")
	assert.NoError(t, err)
	assert.Equal(t, `{"x":2}`, got)
}

func TestStoreGetMissing(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get("never-set")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestStoreDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set("alpha", "v"))
	require.NoError(t, s.Delete("alpha"))
	_, err := s.Get("alpha")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, s.Delete("alpha"))
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("alpha", "kept"))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get("alpha")
	assert.NoError(t, err)
	assert.Equal(t, "kept", got)
}

func TestStoreCloseIdempotent(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
