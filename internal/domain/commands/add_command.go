package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

const changesetIDLength = 8

// Add is the interface for the add command.
type Add interface {
	Execute(ctx context.Context, settings *entities.Settings, opts AddOptions) (*entities.Changeset, error)
}

// AddOptions holds runtime options for writing a new changeset.
type AddOptions struct {
	RepoDir    string
	Releases   []string // "name@type"
	Dependents []string // "name@type"
	Summary    string
	Commit     string // defaults to the short hash of HEAD
	DryRun     bool
}

// AddCommand records a new changeset in the workspace.
type AddCommand struct {
	workspaces repositories.WorkspaceProvider
	newID      func() string
}

// NewAddCommand creates a new AddCommand.
func NewAddCommand(workspaces repositories.WorkspaceProvider) *AddCommand {
	return &AddCommand{
		workspaces: workspaces,
		newID:      newChangesetID,
	}
}

// Execute validates the requested releases against the workspace and saves the changeset.
func (it *AddCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts AddOptions,
) (*entities.Changeset, error) {
	summary := strings.TrimSpace(opts.Summary)
	if summary == "" {
		return nil, errors.New("a changeset needs a summary")
	}

	releases, err := parseReleaseArgs(opts.Releases)
	if err != nil {
		return nil, err
	}
	if len(releases) == 0 {
		return nil, errors.New("a changeset needs at least one release")
	}

	dependents, err := parseReleaseArgs(opts.Dependents)
	if err != nil {
		return nil, err
	}

	ws, err := it.workspaces.Open(opts.RepoDir, settings)
	if err != nil {
		return nil, err
	}

	packages, err := ws.Packages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	for _, release := range releases {
		if _, ok := packages[release.Name]; !ok {
			return nil, &entities.ConfigurationError{
				Package: release.Name,
				Reason:  "not a package of this workspace",
			}
		}
	}
	for _, dependent := range dependents {
		if _, ok := packages[dependent.Name]; !ok {
			logger.Warnf("Dependent %q is not in the workspace, it will be reported as deleted", dependent.Name)
		}
	}

	commit := opts.Commit
	if commit == "" {
		head, headErr := ws.Git.HeadShortHash(ctx)
		if headErr != nil {
			logger.Warnf("Could not read HEAD, the changeset will have no commit: %v", headErr)
		} else {
			commit = head
		}
	}

	changeset := entities.Changeset{
		ID:         it.newID(),
		Summary:    summary,
		Commit:     commit,
		Releases:   releases,
		Dependents: dependents,
	}

	if opts.DryRun {
		logger.Infof("[dry-run] Would write changeset %q", changeset.ID)
		return &changeset, nil
	}

	if saveErr := ws.Changesets.Save(ctx, changeset); saveErr != nil {
		return nil, saveErr
	}

	logger.Infof("Created changeset %q releasing %d package(s)", changeset.ID, len(releases))
	return &changeset, nil
}

// parseReleaseArgs turns "name@type" arguments into releases. Scoped npm
// names ("@scope/pkg@minor") are split on the last "@".
func parseReleaseArgs(args []string) ([]entities.Release, error) {
	releases := make([]entities.Release, 0, len(args))
	seen := make(map[string]struct{}, len(args))

	for _, arg := range args {
		idx := strings.LastIndex(arg, "@")
		if idx <= 0 || idx == len(arg)-1 {
			return nil, fmt.Errorf("invalid release %q, expected name@type", arg)
		}

		name := strings.TrimSpace(arg[:idx])
		bump, err := entities.ParseBumpType(arg[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid release %q: %w", arg, err)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("package %q is listed twice", name)
		}
		seen[name] = struct{}{}

		releases = append(releases, entities.Release{Name: name, Type: bump})
	}

	return releases, nil
}

func newChangesetID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:changesetIDLength]
}
