package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

// Status is the interface for the status command.
type Status interface {
	Execute(ctx context.Context, settings *entities.Settings, opts StatusOptions) (*StatusResult, error)
}

// StatusOptions holds runtime options for the status command.
type StatusOptions struct {
	RepoDir string
}

// StatusResult is the release the pending changesets would produce.
type StatusResult struct {
	Changesets []entities.Changeset
	Plan       *entities.ReleasePlan
}

// StatusCommand resolves the pending changesets without touching the workspace.
type StatusCommand struct {
	workspaces repositories.WorkspaceProvider
	bump       entities.BumpFunc
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(workspaces repositories.WorkspaceProvider, bump entities.BumpFunc) *StatusCommand {
	return &StatusCommand{workspaces: workspaces, bump: bump}
}

// Execute loads and resolves the pending changesets.
func (it *StatusCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts StatusOptions,
) (*StatusResult, error) {
	ws, err := it.workspaces.Open(opts.RepoDir, settings)
	if err != nil {
		return nil, err
	}

	changesets, packages, err := loadPending(ctx, ws)
	if err != nil {
		return nil, err
	}

	plan, err := entities.ResolveRelease(changesets, packages, it.bump)
	if err != nil {
		return nil, err
	}

	logger.Debugf("%d changeset(s) resolve to %d release(s)", len(changesets), len(plan.Releases))
	return &StatusResult{Changesets: changesets, Plan: plan}, nil
}

// loadPending reads the changesets and the packages they are resolved against.
func loadPending(
	ctx context.Context,
	ws *repositories.Workspace,
) ([]entities.Changeset, entities.Packages, error) {
	changesets, err := ws.Changesets.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load changesets: %w", err)
	}

	packages, err := ws.Packages.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return changesets, packages, nil
}
