package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/changesets/internal/domain/commands"
	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// ParseController handles the "parse" subcommand.
type ParseController struct {
	command commands.Parse
}

// NewParseController creates a new ParseController.
func NewParseController(command commands.Parse) *ParseController {
	return &ParseController{command: command}
}

// GetBind returns the Cobra command metadata for the parse controller.
func (it *ParseController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "parse [file]",
		Short: "Decode the release plan of a release commit message",
		Long: `Read a release commit message from a file, or from stdin when no file
is given, and print the embedded release plan as JSON. Typical use:

  git log -1 --format=%B | changesets parse`,
	}
}

// Execute decodes the commit message and prints the plan.
func (it *ParseController) Execute(cmd *cobra.Command, args []string) error {
	var input io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %q: %w", args[0], err)
		}
		defer file.Close()
		input = file
	}

	plan, err := it.command.Execute(context.Background(), input)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(parsedPlan{
		Releases:   plan.Releases,
		Changesets: plan.Changesets,
		Deleted:    plan.Deleted,
	})
}

// parsedPlan also exposes the deleted packages, which the commit JSON omits.
type parsedPlan struct {
	Releases   []entities.PackageRelease   `json:"releases"`
	Changesets []entities.ChangesetSummary `json:"changesets"`
	Deleted    []string                    `json:"deleted"`
}
