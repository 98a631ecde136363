package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o600))
	}

	t.Run("directory is walked and sorted", func(t *testing.T) {
		files, err := FindFilesByExtension(dir, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.hcl"),
			filepath.Join(dir, "b.hcl"),
			filepath.Join(dir, "nested", "c.hcl"),
		}, files)
	})

	t.Run("single matching file", func(t *testing.T) {
		p := filepath.Join(dir, "a.hcl")
		files, err := FindFilesByExtension(p, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{p}, files)
	})

	t.Run("single non matching file", func(t *testing.T) {
		files, err := FindFilesByExtension(filepath.Join(dir, "notes.txt"), ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := FindFilesByExtension(filepath.Join(dir, "nope"), ".hcl")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty extension panics", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = FindFilesByExtension(dir, "") })
	})
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()

	target := filepath.Join(dir, "out", "deep", "ring.nod.xml")
	require.NoError(t, EnsureParentDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureParentDir("ring.nod.xml"))
}
