package list

import (
	"github.com/brennanr9/claude-profile-manager/pkg/profiles"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Options holds options for the list command
type Options struct {
	ProfilesRoot string
	FileSystem   types.FS // Allow injecting a filesystem for testing
}

// Result carries the profiles found under the root, sorted by name.
type Result struct {
	Profiles []types.SnapshotMetadata
}

// List enumerates saved profiles.
func List(opts Options) (*Result, error) {
	store := profiles.New(opts.ProfilesRoot, opts.FileSystem)
	metas, err := store.List()
	if err != nil {
		return nil, err
	}
	return &Result{Profiles: metas}, nil
}
