package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/changesets/internal/domain/commands"
	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// AddController handles the "add" subcommand.
type AddController struct {
	command commands.Add
}

// NewAddController creates a new AddController.
func NewAddController(command commands.Add) *AddController {
	return &AddController{command: command}
}

// GetBind returns the Cobra command metadata for the add controller.
func (it *AddController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "add [path]",
		Short: "Record a new changeset",
		Long: `Record the intent to release one or more packages.

Each --release is written as name@type where type is patch, minor or major.
Packages that only need a release because they depend on a changed package
are listed with --dependent.`,
	}
}

// Execute writes the changeset.
func (it *AddController) Execute(cmd *cobra.Command, args []string) error {
	global := readGlobalOptions(cmd, args)

	settings, err := loadSettings(global)
	if err != nil {
		return err
	}

	releases, _ := cmd.Flags().GetStringArray("release")
	dependents, _ := cmd.Flags().GetStringArray("dependent")
	summary, _ := cmd.Flags().GetString("summary")
	commit, _ := cmd.Flags().GetString("commit")

	changeset, err := it.command.Execute(context.Background(), settings, commands.AddOptions{
		RepoDir:    global.RepoDir,
		Releases:   releases,
		Dependents: dependents,
		Summary:    summary,
		Commit:     commit,
		DryRun:     global.DryRun,
	})
	if err != nil {
		return fmt.Errorf("failed to add changeset: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), changeset.ID)
	return err
}

// AddFlags adds the add-specific flags to the given Cobra command.
func (it *AddController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("release", "r", nil, "Package to release, as name@type (repeatable)")
	cmd.Flags().StringArrayP("dependent", "d", nil, "Dependent package to release, as name@type (repeatable)")
	cmd.Flags().StringP("summary", "m", "", "Summary of the change")
	cmd.Flags().String("commit", "", "Commit the change originates from (default: HEAD)")
}
