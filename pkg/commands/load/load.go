package load

import (
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/profiles"
	"github.com/brennanr9/claude-profile-manager/pkg/restore"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Options holds options for the load command
type Options struct {
	ProfilesRoot string
	Name         string
	DestDir      string
	CacheDir     string

	// Backup copies the destination tree aside before merging.
	Backup bool

	// Force merges into an existing destination.
	Force bool

	FileSystem types.FS // Allow injecting a filesystem for testing
}

// Load restores a saved profile into the destination directory by
// resolving its archive through the profile store and delegating to the
// restorer.
func Load(opts Options) (*types.LoadResult, error) {
	logger := logging.GetLogger("commands.load")
	logger.Info().
		Str("profile", opts.Name).
		Str("dest", opts.DestDir).
		Bool("backup", opts.Backup).
		Bool("force", opts.Force).
		Msg("Loading profile")

	store := profiles.New(opts.ProfilesRoot, opts.FileSystem)
	meta, archivePath, err := store.Load(opts.Name)
	if err != nil {
		return nil, err
	}

	dest, err := restore.Restore(
		restore.Source{Path: archivePath},
		opts.DestDir,
		restore.Options{
			Backup:     opts.Backup,
			Force:      opts.Force,
			CacheDir:   opts.CacheDir,
			FileSystem: opts.FileSystem,
		})
	if err != nil {
		return nil, err
	}

	return &types.LoadResult{DestDir: dest, Metadata: meta}, nil
}
