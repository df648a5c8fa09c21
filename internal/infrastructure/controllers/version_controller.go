package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/changesets/internal/domain/commands"
	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// VersionController handles the "version" subcommand.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version [path]",
		Short: "Consume the pending changesets and release",
		Long: `Resolve the pending changesets into a release, bump the package
manifests, update the changelogs and delete the consumed changesets.

The release commit message is printed. When "commit: true" is configured the
release is committed (and tagged with "tag: true"). With --dry-run only the
commit message is printed.`,
	}
}

// Execute applies the release and prints its commit message.
func (it *VersionController) Execute(cmd *cobra.Command, args []string) error {
	global := readGlobalOptions(cmd, args)

	settings, err := loadSettings(global)
	if err != nil {
		return err
	}

	skipCI, _ := cmd.Flags().GetBool("skip-ci")

	result, err := it.command.Execute(context.Background(), settings, commands.VersionOptions{
		RepoDir: global.RepoDir,
		DryRun:  global.DryRun,
		SkipCI:  skipCI,
	})
	if errors.Is(err, commands.ErrNoChangesets) {
		logger.Info("No pending changesets, nothing to release.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to release: %w", err)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), result.Message)
	return err
}

// AddFlags adds the version-specific flags to the given Cobra command.
func (it *VersionController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("skip-ci", false, "Append [skip ci] to the release commit message")
}
