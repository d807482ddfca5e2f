// pkg/paths/paths_test.go
// TEST TYPE: Unit
// DEPENDENCIES: Environment variables
// PURPOSE: Verify directory resolution, env overrides, and name validation

package paths_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/brennanr9/claude-profile-manager/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv(paths.EnvClaudeDir, "/custom/claude")
	t.Setenv(paths.EnvProfilesDir, "/custom/profiles")
	t.Setenv(paths.EnvCacheDir, "/custom/cache")

	p, err := paths.New()
	require.NoError(t, err)

	assert.Equal(t, "/custom/claude", p.ClaudeDir())
	assert.Equal(t, "/custom/profiles", p.ProfilesRoot())
	assert.Equal(t, "/custom/cache", p.CacheDir())
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv(paths.EnvClaudeDir, "")
	t.Setenv(paths.EnvProfilesDir, "")
	t.Setenv(paths.EnvCacheDir, "")

	p, err := paths.New()
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(p.ClaudeDir(), paths.ClaudeDirName))
	assert.Contains(t, p.ProfilesRoot(), paths.AppDirName)
	assert.True(t, strings.HasSuffix(p.ProfilesRoot(), paths.ProfilesDirName))
	assert.Contains(t, p.CacheDir(), paths.AppDirName)
}

func TestProfileDir(t *testing.T) {
	t.Setenv(paths.EnvProfilesDir, "/custom/profiles")

	p, err := paths.New()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/custom/profiles", "work"), p.ProfileDir("work"))
}

func TestScratchDir_IsUniquePerCall(t *testing.T) {
	t.Setenv(paths.EnvCacheDir, "/custom/cache")

	p, err := paths.New()
	require.NoError(t, err)

	a := p.ScratchDir("restore")
	b := p.ScratchDir("restore")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, filepath.Join("/custom/cache", "restore-")))
}

func TestValidateProfileName(t *testing.T) {
	assert.NoError(t, paths.ValidateProfileName("work"))
	assert.NoError(t, paths.ValidateProfileName("my-profile.v2"))

	assert.Error(t, paths.ValidateProfileName(""))
	assert.Error(t, paths.ValidateProfileName("."))
	assert.Error(t, paths.ValidateProfileName(".."))
	assert.Error(t, paths.ValidateProfileName("a/b"))
	assert.Error(t, paths.ValidateProfileName(`a\b`))
}
