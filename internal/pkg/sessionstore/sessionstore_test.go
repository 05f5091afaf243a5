package sessionstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load()
	assert.ErrorIs(t, err, ErrEmptySlot)

	require.NoError(t, store.Save([]byte(`{"a":1}`)))
	data, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), data)

	// Save overwrites unconditionally.
	require.NoError(t, store.Save([]byte(`{"b":2}`)))
	data, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"b":2}`), data)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrEmptySlot)
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sessions", "session.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load()
	assert.ErrorIs(t, err, ErrEmptySlot)

	require.NoError(t, store.Save([]byte(`{"user":"x"}`)))
	data, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"user":"x"}`), data)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	assert.ErrorIs(t, err, ErrEmptySlot)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}
