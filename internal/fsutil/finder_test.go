package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestFindFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.txt", "b")
	writeFile(t, root, "a/x.txt", "x")
	writeFile(t, root, "a/y.md", "y")

	t.Run("all files", func(t *testing.T) {
		files, err := FindFiles(root, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"a/x.txt", "a/y.md", "b.txt"}, files)
	})

	t.Run("extension filter", func(t *testing.T) {
		files, err := FindFiles(root, ".txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"a/x.txt", "b.txt"}, files)
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := FindFiles(filepath.Join(root, "nope"), "")
		require.Error(t, err)
	})
}
