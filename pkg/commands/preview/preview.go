package preview

import (
	"github.com/brennanr9/claude-profile-manager/pkg/config"
	"github.com/brennanr9/claude-profile-manager/pkg/filesystem"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/selector"
	"github.com/brennanr9/claude-profile-manager/pkg/summary"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
)

// Options holds options for the preview command
type Options struct {
	SourceDir      string
	IncludeSecrets bool
	FileSystem     types.FS // Allow injecting a filesystem for testing
}

// Preview runs selection and summarization without archiving or writing
// anything: what a save of SourceDir would contain.
func Preview(opts Options) (*types.PreviewResult, error) {
	logger := logging.GetLogger("commands.preview")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	cfg, err := config.Load(opts.SourceDir)
	if err != nil {
		return nil, err
	}

	entries, err := selector.Select(fsys, opts.SourceDir, cfg.Selection, opts.IncludeSecrets)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int("files", len(entries)).Msg("Preview computed")

	return &types.PreviewResult{
		Files:    entries,
		Contents: summary.Summarize(entries, fsys, opts.SourceDir),
	}, nil
}
