package controllers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/changesets/internal/domain/commands"
	"github.com/rios0rios0/changesets/internal/domain/entities"
)

//nolint:gochecknoglobals // lipgloss styles are immutable values
var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	bumpStyles   = map[entities.BumpType]lipgloss.Style{
		entities.BumpMajor: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		entities.BumpMinor: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		entities.BumpPatch: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	}
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status) *StatusController {
	return &StatusController{command: command}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status [path]",
		Short: "Show the release the pending changesets would produce",
		Long: `Resolve the pending changesets against the workspace packages and
print the packages that would be released, with their next versions.
Nothing is written.`,
	}
}

// Execute prints the pending release.
func (it *StatusController) Execute(cmd *cobra.Command, args []string) error {
	global := readGlobalOptions(cmd, args)

	settings, err := loadSettings(global)
	if err != nil {
		return err
	}

	result, err := it.command.Execute(context.Background(), settings, commands.StatusOptions{
		RepoDir: global.RepoDir,
	})
	if err != nil {
		return fmt.Errorf("failed to resolve changesets: %w", err)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), formatStatus(result))
	return err
}

// formatStatus renders the plan for a terminal.
func formatStatus(result *commands.StatusResult) string {
	if len(result.Changesets) == 0 {
		return dimStyle.Render("No pending changesets.") + "\n"
	}

	var builder strings.Builder
	builder.WriteString(headingStyle.Render(fmt.Sprintf(
		"%d changeset(s), %d package(s) to release", len(result.Changesets), len(result.Plan.Releases),
	)))
	builder.WriteString("\n\n")

	for _, release := range result.Plan.Releases {
		style, ok := bumpStyles[release.Type]
		if !ok {
			style = dimStyle
		}
		builder.WriteString(fmt.Sprintf(
			"  %s %s %s\n",
			nameStyle.Render(release.Name),
			style.Render(release.Type.String()),
			release.Version,
		))
	}

	if len(result.Plan.Deleted) > 0 {
		builder.WriteString("\n" + headingStyle.Render("Deleted") + "\n")
		for _, name := range result.Plan.Deleted {
			builder.WriteString("  " + dimStyle.Render(name) + "\n")
		}
	}

	return builder.String()
}
