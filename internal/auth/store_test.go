package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("")
	assert.Equal(t, "", s.Token())

	require.NoError(t, s.SetToken("abc"))
	assert.Equal(t, "abc", s.Token())

	require.NoError(t, s.ClearToken())
	assert.Equal(t, "", s.Token())
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	s := NewFileStore(path)

	assert.Equal(t, "", s.Token(), "missing file means no token")

	require.NoError(t, s.SetToken("secret-token"))
	assert.Equal(t, "secret-token", s.Token())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, s.ClearToken())
	assert.Equal(t, "", s.Token())
	require.NoError(t, s.ClearToken(), "clearing twice is not an error")
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.Equal(t, "", NewFileStore(path).Token())
}
