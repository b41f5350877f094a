package filestorage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_EnsureDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")
	store, err := NewLocalStorage(root)
	require.NoError(t, err)

	dir, err := store.EnsureDir("backups")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "backups"), dir)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalStorage_PathStaysUnderRoot(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	p := store.Path("../../etc", "../passwd")
	assert.Equal(t, filepath.Join(store.BasePath(), "etc", "passwd"), p)
}
