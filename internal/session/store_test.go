package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_SaveLoad(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Save("tok-123"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestFileStore_LoadMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_Clear(t *testing.T) {
	store := NewFileStore(t.TempDir())
	require.NoError(t, store.Save("tok-123"))

	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestFileStore_ClearMissing(t *testing.T) {
	store := NewFileStore(t.TempDir())

	// Clearing an absent token is not an error.
	assert.NoError(t, store.Clear())
}

func TestFileStore_Permissions(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, store.Save("tok-123"))

	info, err := os.Stat(filepath.Join(dir, "token.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token.json"), []byte("not json"), 0600))

	_, err := store.Load()
	assert.Error(t, err)
}
