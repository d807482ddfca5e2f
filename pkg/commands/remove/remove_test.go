// pkg/commands/remove/remove_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS
// PURPOSE: Test remove command deletion of stored profiles

package remove_test

import (
	"testing"

	"github.com/brennanr9/claude-profile-manager/pkg/commands/remove"
	"github.com/brennanr9/claude-profile-manager/pkg/commands/save"
	perrors "github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove_DeletesProfile(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/claude", map[string]string{"CLAUDE.md": "i"})
	_, err := save.Save(save.Options{
		SourceDir: "/claude", ProfilesRoot: "/profiles", Name: "work", FileSystem: fsys,
	})
	require.NoError(t, err)

	require.NoError(t, remove.Remove(remove.Options{
		ProfilesRoot: "/profiles", Name: "work", FileSystem: fsys,
	}))

	_, err = fsys.Stat("/profiles/work")
	assert.Error(t, err, "profile directory should be gone")
}

func TestRemove_MissingProfile(t *testing.T) {
	fsys := testutil.NewMemFS(t, "/profiles", nil)

	err := remove.Remove(remove.Options{
		ProfilesRoot: "/profiles", Name: "nope", FileSystem: fsys,
	})
	require.Error(t, err)
	assert.True(t, perrors.IsErrorCode(err, perrors.ErrProfileNotFound))
}
