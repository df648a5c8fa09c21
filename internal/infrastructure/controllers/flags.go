package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// globalOptions are the persistent flags every subcommand understands.
type globalOptions struct {
	ConfigPath string
	DryRun     bool
	RepoDir    string
}

// readGlobalOptions reads the persistent flags and the optional workspace argument.
func readGlobalOptions(cmd *cobra.Command, args []string) globalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}

	return globalOptions{
		ConfigPath: configPath,
		DryRun:     dryRun,
		RepoDir:    repoDir,
	}
}

// loadSettings loads the configuration named by --config, or the auto-detected one.
func loadSettings(opts globalOptions) (*entities.Settings, error) {
	return entities.LoadSettings(opts.ConfigPath)
}
