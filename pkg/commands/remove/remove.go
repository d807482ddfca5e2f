package remove

import (
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/profiles"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Options holds options for the remove command
type Options struct {
	ProfilesRoot string
	Name         string
	FileSystem   types.FS // Allow injecting a filesystem for testing
}

// Remove deletes a saved profile, metadata and archive both.
func Remove(opts Options) error {
	logger := logging.GetLogger("commands.remove")
	logger.Info().Str("profile", opts.Name).Msg("Removing profile")

	store := profiles.New(opts.ProfilesRoot, opts.FileSystem)
	return store.Delete(opts.Name)
}
