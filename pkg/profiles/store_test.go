// pkg/profiles/store_test.go
// TEST TYPE: Unit
// DEPENDENCIES: Memory FS
// PURPOSE: Verify profile persistence layout, listing, and deletion

package profiles_test

import (
	"testing"
	"time"

	perrors "github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/profiles"
	"github.com/brennanr9/claude-profile-manager/pkg/testutil"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeta(name string) types.SnapshotMetadata {
	contents := types.NewContentSummary()
	contents.Add("instructions", "CLAUDE.md")
	return types.SnapshotMetadata{
		Name:      name,
		Version:   "1.0.0",
		CreatedAt: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
		Platform:  "linux",
		Files:     []string{"CLAUDE.md"},
		Contents:  contents,
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/profiles", nil)
	store := profiles.New("/profiles", fsys)

	dir, err := store.Save(testMeta("work"), []byte("zip-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/profiles/work", dir)

	// Layout: {name}/profile.json + {name}/snapshot.zip
	assert.Equal(t, "zip-bytes", testutil.ReadFileString(t, fsys, "/profiles/work/snapshot.zip"))
	doc := testutil.ReadFileString(t, fsys, "/profiles/work/profile.json")
	assert.Contains(t, doc, `"name": "work"`)

	meta, archivePath, err := store.Load("work")
	require.NoError(t, err)
	assert.Equal(t, "work", meta.Name)
	assert.Equal(t, []string{"CLAUDE.md"}, meta.Files)
	assert.Equal(t, "/profiles/work/snapshot.zip", archivePath)
}

func TestStore_LoadMissingProfile(t *testing.T) {
	store := profiles.New("/profiles", testutil.NewMemFS(t, "/profiles", nil))

	_, _, err := store.Load("nope")
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrProfileNotFound))
	assert.Contains(t, err.Error(), "nope")
}

func TestStore_LoadMissingArchive(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/profiles", nil)
	store := profiles.New("/profiles", fsys)

	_, err := store.Save(testMeta("work"), []byte("zip"))
	require.NoError(t, err)
	require.NoError(t, fsys.Remove("/profiles/work/snapshot.zip"))

	_, _, err = store.Load("work")
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrArchiveCorrupt))
}

func TestStore_ListSortedAndSkipsUnreadable(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/profiles", nil)
	store := profiles.New("/profiles", fsys)

	for _, name := range []string{"zeta", "alpha"} {
		_, err := store.Save(testMeta(name), []byte("zip"))
		require.NoError(t, err)
	}
	// A directory with garbage metadata is skipped silently.
	require.NoError(t, fsys.MkdirAll("/profiles/broken", 0755))
	require.NoError(t, fsys.WriteFile("/profiles/broken/profile.json", []byte("{nope"), 0644))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)
	assert.Equal(t, "zeta", list[1].Name)
}

func TestStore_ListEmptyRoot(t *testing.T) {
	store := profiles.New("/absent", testutil.NewMemFS(t, "/x", nil))

	list, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_Delete(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/profiles", nil)
	store := profiles.New("/profiles", fsys)

	_, err := store.Save(testMeta("work"), []byte("zip"))
	require.NoError(t, err)

	require.NoError(t, store.Delete("work"))
	assert.False(t, store.Exists("work"))

	err = store.Delete("work")
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrProfileNotFound))
}

func TestStore_RejectsInvalidNames(t *testing.T) {
	store := profiles.New("/profiles", testutil.NewMemFS(t, "/profiles", nil))

	_, err := store.Save(testMeta("../evil"), []byte("zip"))
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrInvalidInput))

	_, _, err = store.Load("a/b")
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrInvalidInput))
}
