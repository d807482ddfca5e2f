// Package config loads the selection pattern configuration: which paths of
// a source tree are allowlisted into snapshots and which patterns exclude
// sensitive files from the allowed set.
//
// Defaults are embedded; a .claude-profiles.toml at the root of the source
// tree overrides them. The loaded Selection value is passed explicitly into
// the selector so tests can run with synthetic pattern sets.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/paths"
)

// Selection holds the allow/exclude pattern lists used by the selector.
//
// Allow patterns take one of three forms: an exact relative path, an exact
// leaf name, or a directory prefix with recursive contents ("dir/**").
// Exclude patterns take one of three forms: an exact name/path, a suffix
// pattern ("*.ext"), or a prefix pattern ("name*").
type Selection struct {
	Allow   []string `koanf:"allow"`
	Exclude []string `koanf:"exclude"`
}

// Config is the root configuration document.
type Config struct {
	Selection Selection `koanf:"selection"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	return load("")
}

// Load returns the configuration for a source tree: embedded defaults,
// overlaid with sourceRoot/.claude-profiles.toml when present.
func Load(sourceRoot string) (*Config, error) {
	return load(sourceRoot)
}

func load(sourceRoot string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default config")
	}

	if sourceRoot != "" {
		overridePath := filepath.Join(sourceRoot, paths.ConfigFileName)
		if _, err := os.Stat(overridePath); err == nil {
			if err := k.Load(file.Provider(overridePath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", overridePath)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	return &cfg, nil
}
