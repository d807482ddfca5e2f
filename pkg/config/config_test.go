// pkg/config/config_test.go
// TEST TYPE: Unit
// DEPENDENCIES: Temp directories
// PURPOSE: Verify embedded defaults, source-tree overrides, and TOML generation

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brennanr9/claude-profile-manager/pkg/config"
	"github.com/brennanr9/claude-profile-manager/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_EmbeddedPatterns(t *testing.T) {
	cfg, err := config.Default()
	require.NoError(t, err)

	assert.Contains(t, cfg.Selection.Allow, "CLAUDE.md")
	assert.Contains(t, cfg.Selection.Allow, "commands/**")
	assert.Contains(t, cfg.Selection.Allow, ".mcp.json")
	assert.Contains(t, cfg.Selection.Exclude, "*.key")
	assert.Contains(t, cfg.Selection.Exclude, "oauth_token*")
	assert.Contains(t, cfg.Selection.Exclude, ".credentials.json")
}

func TestLoad_NoOverrideFile(t *testing.T) {
	root := t.TempDir()

	cfg, err := config.Load(root)
	require.NoError(t, err)

	defaults, err := config.Default()
	require.NoError(t, err)
	assert.Equal(t, defaults.Selection, cfg.Selection)
}

func TestLoad_OverrideReplacesLists(t *testing.T) {
	root := t.TempDir()
	override := `
[selection]
allow = ["CLAUDE.md", "extras/**"]
exclude = ["*.token"]
`
	require.NoError(t, os.WriteFile(filepath.Join(root, paths.ConfigFileName), []byte(override), 0644))

	cfg, err := config.Load(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"CLAUDE.md", "extras/**"}, cfg.Selection.Allow)
	assert.Equal(t, []string{"*.token"}, cfg.Selection.Exclude)
}

func TestLoad_MalformedOverrideFails(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, paths.ConfigFileName), []byte("[selection\nallow="), 0644))

	_, err := config.Load(root)
	assert.Error(t, err)
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	cfg := &config.Config{
		Selection: config.Selection{
			Allow:   []string{"CLAUDE.md", "commands/**"},
			Exclude: []string{"*.key"},
		},
	}

	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, paths.ConfigFileName), data, 0644))

	back, err := config.Load(root)
	require.NoError(t, err)
	assert.Equal(t, cfg.Selection, back.Selection)
}
