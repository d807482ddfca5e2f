package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brennanr9/claude-profile-manager/pkg/filesystem"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
	"github.com/stretchr/testify/require"
)

// NewMemFS builds an in-memory filesystem with the given files under root.
// Map keys are slash-separated paths relative to root; parent directories
// are created implicitly. A key ending in "/" creates an empty directory.
func NewMemFS(t *testing.T, root string, files map[string]string) types.FS {
	t.Helper()

	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll(root, 0755))
	WriteTree(t, fsys, root, files)
	return fsys
}

// WriteTree writes the given files beneath root on any types.FS.
func WriteTree(t *testing.T, fsys types.FS, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		target := filepath.Join(root, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			require.NoError(t, fsys.MkdirAll(target, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, fsys.WriteFile(target, []byte(content), 0644))
	}
}

// TempTree writes the given files into a fresh temp directory on the real
// filesystem and returns its path. Used by tests that need OS semantics
// (backups, scratch dirs) rather than the memory FS.
func TempTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range files {
		target := filepath.Join(root, filepath.FromSlash(rel))
		if len(rel) > 0 && rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(target, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
		require.NoError(t, os.WriteFile(target, []byte(content), 0644))
	}
	return root
}

// ReadFileString reads a file through the FS and fails the test on error.
func ReadFileString(t *testing.T, fsys types.FS, path string) string {
	t.Helper()

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
