package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/brennanr9/claude-profile-manager/internal/version"
	"github.com/brennanr9/claude-profile-manager/pkg/commands/list"
	"github.com/brennanr9/claude-profile-manager/pkg/commands/load"
	"github.com/brennanr9/claude-profile-manager/pkg/commands/preview"
	"github.com/brennanr9/claude-profile-manager/pkg/commands/remove"
	"github.com/brennanr9/claude-profile-manager/pkg/commands/save"
	"github.com/brennanr9/claude-profile-manager/pkg/config"
	"github.com/brennanr9/claude-profile-manager/pkg/logging"
	"github.com/brennanr9/claude-profile-manager/pkg/paths"
	"github.com/brennanr9/claude-profile-manager/pkg/profiles"
	"github.com/brennanr9/claude-profile-manager/pkg/types"
	"github.com/brennanr9/claude-profile-manager/pkg/ui/styles"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "claude-profiles",
		Short: "Snapshot and restore Claude configuration profiles",
		Long: `claude-profiles snapshots your Claude configuration directory into a
portable archive and restores it later, merging safely into a live tree
even while files are held open by a running client.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(newSaveCmd())
	rootCmd.AddCommand(newLoadCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newSaveCmd() *cobra.Command {
	var (
		sourceDir      string
		description    string
		profileVersion string
		tags           []string
		includeSecrets bool
		force          bool
	)

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Snapshot the Claude configuration directory into a named profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}
			if sourceDir == "" {
				sourceDir = p.ClaudeDir()
			}

			result, err := save.Save(save.Options{
				SourceDir:      sourceDir,
				ProfilesRoot:   p.ProfilesRoot(),
				Name:           args[0],
				Version:        profileVersion,
				Description:    description,
				Tags:           tags,
				IncludeSecrets: includeSecrets,
				Force:          force,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s %s (%d files)\n",
				styles.GetStyle("Success").Render("Saved profile"),
				styles.GetStyle("ProfileName").Render(result.Metadata.Name),
				len(result.Metadata.Files))
			fmt.Printf("  %s\n", styles.GetStyle("Muted").Render(result.ProfileDir))
			if includeSecrets {
				fmt.Println(styles.GetStyle("Warning").Render("  Warning: secrets were included in this snapshot"))
			}
			printContents(result.Metadata.Contents)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source", "", "Source directory (default: the Claude config directory)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")
	cmd.Flags().StringVar(&profileVersion, "profile-version", "", "Semantic version of the profile (default 1.0.0)")
	cmd.Flags().StringSliceVarP(&tags, "tag", "t", nil, "Tag for the profile (repeatable)")
	cmd.Flags().BoolVar(&includeSecrets, "secrets", false, "Include files matched by exclude patterns")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing profile of the same name")

	return cmd
}

func newLoadCmd() *cobra.Command {
	var (
		destDir string
		backup  bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Restore a saved profile into the Claude configuration directory",
		Long: `Restore a saved profile by merging its files into the destination
directory. Files in the archive overwrite their destination counterparts;
files not in the archive are left alone. Use --backup to copy the current
destination aside first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}
			if destDir == "" {
				destDir = p.ClaudeDir()
			}

			result, err := load.Load(load.Options{
				ProfilesRoot: p.ProfilesRoot(),
				Name:         args[0],
				DestDir:      destDir,
				CacheDir:     p.CacheDir(),
				Backup:       backup,
				Force:        force,
			})
			if err != nil {
				return err
			}

			fmt.Printf("%s %s into %s\n",
				styles.GetStyle("Success").Render("Restored profile"),
				styles.GetStyle("ProfileName").Render(result.Metadata.Name),
				result.DestDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&destDir, "dest", "", "Destination directory (default: the Claude config directory)")
	cmd.Flags().BoolVarP(&backup, "backup", "b", false, "Back up the destination before merging")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Merge into an existing destination")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}

			result, err := list.List(list.Options{ProfilesRoot: p.ProfilesRoot()})
			if err != nil {
				return err
			}
			if len(result.Profiles) == 0 {
				fmt.Println(styles.GetStyle("Muted").Render("No profiles saved yet."))
				return nil
			}

			for _, meta := range result.Profiles {
				line := fmt.Sprintf("%s  v%s  %d files  %s",
					styles.GetStyle("ProfileName").Render(meta.Name),
					meta.Version,
					len(meta.Files),
					meta.CreatedAt.Format("2006-01-02 15:04"))
				if meta.IncludesSecrets {
					line += "  " + styles.GetStyle("Warning").Render("[secrets]")
				}
				fmt.Println(line)
				if meta.Description != "" {
					fmt.Printf("    %s\n", styles.GetStyle("Muted").Render(meta.Description))
				}
			}
			return nil
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a profile's metadata and contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}

			store := profiles.New(p.ProfilesRoot(), nil)
			meta, _, err := store.Load(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s v%s\n", styles.GetStyle("ProfileName").Render(meta.Name), meta.Version)
			if meta.Description != "" {
				fmt.Println(meta.Description)
			}
			fmt.Printf("Created:  %s on %s\n", meta.CreatedAt.Format("2006-01-02 15:04"), meta.Platform)
			if len(meta.Tags) > 0 {
				fmt.Printf("Tags:     %s\n", strings.Join(meta.Tags, ", "))
			}
			fmt.Printf("Files:    %d\n", len(meta.Files))
			if meta.IncludesSecrets {
				fmt.Println(styles.GetStyle("Warning").Render("Includes secrets"))
			}
			printContents(meta.Contents)
			return nil
		},
	}
}

func newPreviewCmd() *cobra.Command {
	var (
		sourceDir      string
		includeSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show what a save would archive, without writing anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}
			if sourceDir == "" {
				sourceDir = p.ClaudeDir()
			}

			result, err := preview.Preview(preview.Options{
				SourceDir:      sourceDir,
				IncludeSecrets: includeSecrets,
			})
			if err != nil {
				return err
			}

			for _, rel := range result.Files {
				fmt.Println(rel)
			}
			printContents(result.Contents)
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source", "", "Source directory (default: the Claude config directory)")
	cmd.Flags().BoolVar(&includeSecrets, "secrets", false, "Include files matched by exclude patterns")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}

			if err := remove.Remove(remove.Options{
				ProfilesRoot: p.ProfilesRoot(),
				Name:         args[0],
			}); err != nil {
				return err
			}

			fmt.Printf("%s %s\n",
				styles.GetStyle("Success").Render("Deleted profile"),
				styles.GetStyle("ProfileName").Render(args[0]))
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective selection patterns",
		Long: `Print the selection patterns a save would use, including any override
from ` + paths.ConfigFileName + ` in the source directory. With --write, a
starter override file is created there instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New()
			if err != nil {
				return err
			}

			cfg, err := config.Load(p.ClaudeDir())
			if err != nil {
				return err
			}

			if !write {
				data, err := config.Marshal(cfg)
				if err != nil {
					return err
				}
				fmt.Print(string(data))
				return nil
			}

			target := filepath.Join(p.ClaudeDir(), paths.ConfigFileName)
			if _, err := os.Stat(target); err == nil {
				return fmt.Errorf("%s already exists", target)
			}
			if err := os.WriteFile(target, []byte(config.GetDefaultConfigContent()), 0644); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", styles.GetStyle("Success").Render("Wrote"), target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Write a starter override file to the source directory")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("claude-profiles version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func printContents(contents types.ContentSummary) {
	for _, category := range contents.Categories() {
		fmt.Printf("  %s: %s\n",
			styles.GetStyle("Category").Render(category),
			strings.Join(contents.Items(category), ", "))
	}
}
