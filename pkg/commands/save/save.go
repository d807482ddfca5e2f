package save

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/brennanr9/claude-profile-manager/pkg/archive"
	"github.com/brennanr9/claude-profile-manager/pkg/config"
	"github.com/brennanr9/claude-profile-manager/pkg/errors"
	"github.com/brennanr9/claude-profile-manager/pkg/filesystem"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/paths"
	"github.com/brennanr9/claude-profile-manager/pkg/profiles"
	"github.com/brennanr9/claude-profile-manager/pkg/selector"
	"github.com/brennanr9/claude-profile-manager/pkg/summary"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// EnvClaudeVersion optionally carries the hosting client's version into
// snapshot metadata.
const EnvClaudeVersion = "CLAUDE_VERSION"

// Options holds options for the save command
type Options struct {
	SourceDir    string
	ProfilesRoot string
	Name         string
	Version      string
	Description  string
	Tags         []string

	// IncludeSecrets disables the exclude patterns for this snapshot;
	// the metadata records that it was set.
	IncludeSecrets bool

	// Force overwrites an existing profile of the same name.
	Force bool

	FileSystem types.FS // Allow injecting a filesystem for testing
}

// Save snapshots the source directory into a named profile: selection,
// archiving, content summarization, then persistence through the profile
// store.
func Save(opts Options) (*types.SaveResult, error) {
	logger := logging.GetLogger("commands.save")
	logger.Info().
		Str("profile", opts.Name).
		Str("source", opts.SourceDir).
		Bool("includeSecrets", opts.IncludeSecrets).
		Msg("Saving profile")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	name := strings.TrimRight(opts.Name, "/")
	if err := paths.ValidateProfileName(name); err != nil {
		return nil, err
	}

	store := profiles.New(opts.ProfilesRoot, fsys)
	if store.Exists(name) && !opts.Force {
		return nil, errors.Newf(errors.ErrProfileExists, "profile %s already exists, pass force to overwrite", name)
	}

	cfg, err := config.Load(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	entries, err := selector.Select(fsys, opts.SourceDir, cfg.Selection, opts.IncludeSecrets)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	manifest, err := archive.Create(fsys, opts.SourceDir, entries, &buf)
	if err != nil {
		return nil, err
	}

	version := opts.Version
	if version == "" {
		version = "1.0.0"
	}

	meta := types.SnapshotMetadata{
		Name:            name,
		Version:         version,
		Description:     opts.Description,
		Tags:            append([]string(nil), opts.Tags...),
		CreatedAt:       time.Now().UTC(),
		Platform:        runtime.GOOS + "/" + runtime.GOARCH,
		IncludesSecrets: opts.IncludeSecrets,
		Files:           manifest,
		Contents:        summary.Summarize(manifest, fsys, opts.SourceDir),
		ClaudeVersion:   claudeVersion(),
	}

	dir, err := store.Save(meta, buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &types.SaveResult{ProfileDir: dir, Metadata: meta}, nil
}

func claudeVersion() string {
	if v := os.Getenv(EnvClaudeVersion); v != "" {
		return v
	}
	return "unknown"
}
