// Package paths provides centralized path handling for claude-profiles.
// It implements XDG Base Directory specification compliance and provides
// a consistent API for all path operations in the codebase.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/brennanr9/claude-profile-manager/pkg/errors"
)

// Environment variable names
const (
	// EnvClaudeDir overrides the default ~/.claude source directory
	EnvClaudeDir = "CLAUDE_DIR"

	// EnvProfilesDir overrides the profiles root directory
	EnvProfilesDir = "CLAUDE_PROFILES_DIR"

	// EnvCacheDir overrides the scratch/cache directory
	EnvCacheDir = "CLAUDE_PROFILES_CACHE_DIR"
)

// Well-known file and directory names.
// These define the on-disk profile layout and are NOT user-configurable;
// changing them would orphan existing profile stores.
const (
	// AppDirName is the directory name under the XDG base directories
	AppDirName = "claude-profiles"

	// ProfilesDirName is the subdirectory holding saved profiles
	ProfilesDirName = "profiles"

	// MetadataFileName is the metadata document inside a profile directory
	MetadataFileName = "profile.json"

	// ArchiveFileName is the snapshot archive inside a profile directory
	ArchiveFileName = "snapshot.zip"

	// ConfigFileName is the optional selection config in the source tree
	ConfigFileName = ".claude-profiles.toml"

	// ClaudeDirName is the default source directory name under $HOME
	ClaudeDirName = ".claude"
)

// Paths provides centralized path management for claude-profiles
type Paths struct {
	claudeDir    string
	profilesRoot string
	cacheDir     string
}

// New resolves all base directories, honoring environment overrides and
// falling back to XDG defaults.
func New() (*Paths, error) {
	claudeDir := os.Getenv(EnvClaudeDir)
	if claudeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot determine home directory")
		}
		claudeDir = filepath.Join(home, ClaudeDirName)
	}

	profilesRoot := os.Getenv(EnvProfilesDir)
	if profilesRoot == "" {
		profilesRoot = filepath.Join(xdg.DataHome, AppDirName, ProfilesDirName)
	}

	cacheDir := os.Getenv(EnvCacheDir)
	if cacheDir == "" {
		cacheDir = filepath.Join(xdg.CacheHome, AppDirName)
	}

	return &Paths{
		claudeDir:    claudeDir,
		profilesRoot: profilesRoot,
		cacheDir:     cacheDir,
	}, nil
}

// ClaudeDir returns the configuration source directory (default ~/.claude)
func (p *Paths) ClaudeDir() string {
	return p.claudeDir
}

// ProfilesRoot returns the directory under which profiles are stored
func (p *Paths) ProfilesRoot() string {
	return p.profilesRoot
}

// CacheDir returns the scratch/cache directory
func (p *Paths) CacheDir() string {
	return p.cacheDir
}

// ProfileDir returns the directory of a named profile
func (p *Paths) ProfileDir(name string) string {
	return filepath.Join(p.profilesRoot, name)
}

// ScratchDir returns a new invocation-unique directory path under the cache
// directory. The directory is not created; its name embeds a timestamp and
// pid so concurrent invocations never collide.
func (p *Paths) ScratchDir(prefix string) string {
	unique := fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixNano(), os.Getpid())
	return filepath.Join(p.cacheDir, unique)
}

// ValidateProfileName rejects names that would escape the profiles root or
// collide with path syntax.
func ValidateProfileName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "profile name must not be empty")
	}
	if name == "." || name == ".." {
		return errors.Newf(errors.ErrInvalidInput, "invalid profile name %q", name)
	}
	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "profile name %q must not contain path separators", name)
	}
	return nil
}
