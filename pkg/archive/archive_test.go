// pkg/archive/archive_test.go
// TEST TYPE: Unit
// DEPENDENCIES: Memory FS
// PURPOSE: Verify archive round-trips, manifest ordering, and corrupt-archive handling

package archive_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/brennanr9/claude-profile-manager/pkg/archive"
	perrors "github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_ManifestIsSorted(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/src", map[string]string{
		"CLAUDE.md":       "i",
		"commands/b.md":   "b",
		"commands/a.md":   "a",
	})

	var buf bytes.Buffer
	manifest, err := archive.Create(fsys, "/src", []string{"commands", "commands/b.md", "commands/a.md", "CLAUDE.md"}, &buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"CLAUDE.md", "commands", "commands/a.md", "commands/b.md"}, manifest)
}

func TestCreate_ReadableByStandardZipReader(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/src", map[string]string{
		"CLAUDE.md": "# instructions",
	})

	var buf bytes.Buffer
	_, err := archive.Create(fsys, "/src", []string{"CLAUDE.md"}, &buf)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "CLAUDE.md", zr.File[0].Name)
	assert.Equal(t, zip.Deflate, zr.File[0].Method)
}

func TestRoundTrip_ByteIdenticalContent(t *testing.T) {
	files := map[string]string{
		"CLAUDE.md":          "# instructions\nwith content",
		"commands/foo.md":    "foo body",
		"commands/sub/x.md":  "nested",
		".mcp.json":          `{"mcpServers":{"github":{}}}`,
	}
	fsys := testutil.NewMemFS(t, "/src", files)

	entries := []string{"CLAUDE.md", ".mcp.json", "commands", "commands/foo.md", "commands/sub", "commands/sub/x.md"}
	var buf bytes.Buffer
	_, err := archive.Create(fsys, "/src", entries, &buf)
	require.NoError(t, err)

	require.NoError(t, fsys.WriteFile("/snapshot.zip", buf.Bytes(), 0644))
	require.NoError(t, archive.Extract(fsys, "/snapshot.zip", "/dest"))

	for rel, want := range files {
		got := testutil.ReadFileString(t, fsys, "/dest/"+rel)
		assert.Equal(t, want, got, rel)
	}
}

func TestRoundTrip_EmptyDirectorySurvives(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/src", map[string]string{
		"hooks/": "",
	})

	var buf bytes.Buffer
	manifest, err := archive.Create(fsys, "/src", []string{"hooks"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"hooks"}, manifest)

	require.NoError(t, fsys.WriteFile("/snapshot.zip", buf.Bytes(), 0644))
	require.NoError(t, archive.Extract(fsys, "/snapshot.zip", "/dest"))

	info, err := fsys.Stat("/dest/hooks")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCreate_MissingSourceFileAborts(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/src", map[string]string{"CLAUDE.md": "i"})

	var buf bytes.Buffer
	_, err := archive.Create(fsys, "/src", []string{"CLAUDE.md", "missing.md"}, &buf)
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrFileAccess))
}

func TestExtract_MissingArchive(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/src", nil)

	err := archive.Extract(fsys, "/nope.zip", "/dest")
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrArchiveCorrupt))
}

func TestExtract_CorruptArchive(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/src", nil)
	require.NoError(t, fsys.WriteFile("/bad.zip", []byte("this is not a zip"), 0644))

	err := archive.Extract(fsys, "/bad.zip", "/dest")
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrArchiveCorrupt))
}

func TestExtract_RejectsPathTraversal(t *testing.T) {
	// Hand-build a zip with an escaping entry name.
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("../evil.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("evil"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	fsys := testutil.NewMemFS(t, "/src", nil)
	require.NoError(t, fsys.WriteFile("/evil.zip", buf.Bytes(), 0644))

	err = archive.Extract(fsys, "/evil.zip", "/dest")
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrArchiveCorrupt))

	_, statErr := fsys.Stat("/evil.txt")
	assert.Error(t, statErr, "escaping entry must not be written")
}
