package commands

import "github.com/rios0rios0/changesets/internal/domain/repositories"

// ParseReleaseArgs exports parseReleaseArgs for testing.
var ParseReleaseArgs = parseReleaseArgs //nolint:gochecknoglobals // test export

// NewAddCommandWithIDs creates an AddCommand with a deterministic id generator for testing.
func NewAddCommandWithIDs(workspaces repositories.WorkspaceProvider, newID func() string) *AddCommand {
	return &AddCommand{workspaces: workspaces, newID: newID}
}
