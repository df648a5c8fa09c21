package commands

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

// ErrNoChangesets is returned when there is nothing to release.
var ErrNoChangesets = errors.New("no pending changesets")

// Version is the interface for the version command.
type Version interface {
	Execute(ctx context.Context, settings *entities.Settings, opts VersionOptions) (*VersionResult, error)
}

// VersionOptions holds runtime options for consuming the pending changesets.
type VersionOptions struct {
	RepoDir string
	DryRun  bool
	SkipCI  bool
}

// VersionResult describes the release that was applied.
type VersionResult struct {
	Plan    *entities.ReleasePlan
	Message string // release commit message
	Commit  string // short hash of the release commit, empty when not committed
}

// VersionCommand consumes the pending changesets: it bumps the package
// manifests, updates the changelogs, deletes the changesets and optionally
// commits and tags the release.
type VersionCommand struct {
	workspaces repositories.WorkspaceProvider
	bump       entities.BumpFunc
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(workspaces repositories.WorkspaceProvider, bump entities.BumpFunc) *VersionCommand {
	return &VersionCommand{workspaces: workspaces, bump: bump}
}

// Execute resolves and applies the release.
func (it *VersionCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts VersionOptions,
) (*VersionResult, error) {
	ws, err := it.workspaces.Open(opts.RepoDir, settings)
	if err != nil {
		return nil, err
	}

	changesets, packages, err := loadPending(ctx, ws)
	if err != nil {
		return nil, err
	}
	if len(changesets) == 0 {
		return nil, ErrNoChangesets
	}

	plan, err := entities.ResolveRelease(changesets, packages, it.bump)
	if err != nil {
		return nil, err
	}

	message, err := entities.RenderReleaseCommit(plan, entities.CommitOptions{
		SkipCI: opts.SkipCI || settings.SkipCI,
	})
	if err != nil {
		return nil, err
	}

	result := &VersionResult{Plan: plan, Message: message}
	if opts.DryRun {
		logger.Infof("[dry-run] Would release %d package(s)", len(plan.Releases))
		return result, nil
	}

	if applyErr := applyReleases(ctx, ws, plan, packages, changesets); applyErr != nil {
		return nil, applyErr
	}

	for _, changeset := range changesets {
		if deleteErr := ws.Changesets.Delete(ctx, changeset.ID); deleteErr != nil {
			return nil, deleteErr
		}
	}
	logger.Infof("Consumed %d changeset(s)", len(changesets))

	if !settings.Commit {
		return result, nil
	}

	hash, err := ws.Git.CommitAll(ctx, message, settings.Author)
	if err != nil {
		return nil, err
	}
	result.Commit = hash
	logger.Infof("Committed release %s", hash)

	if settings.Tag {
		for _, release := range plan.Releases {
			tag := release.Name + "@" + release.Version
			if tagErr := ws.Git.Tag(ctx, tag, tag, settings.Author); tagErr != nil {
				return nil, tagErr
			}
			logger.Infof("Tagged %s", tag)
		}
	}

	return result, nil
}

// applyReleases writes the new versions and changelog sections.
func applyReleases(
	ctx context.Context,
	ws *repositories.Workspace,
	plan *entities.ReleasePlan,
	packages entities.Packages,
	changesets []entities.Changeset,
) error {
	byID := make(map[string]entities.Changeset, len(changesets))
	for _, changeset := range changesets {
		byID[changeset.ID] = changeset
	}

	for _, release := range plan.Releases {
		pkg := packages[release.Name]

		if err := ws.Packages.UpdateVersion(ctx, pkg, release.Version); err != nil {
			return err
		}

		changelog, err := ws.Packages.ReadChangelog(ctx, pkg)
		if err != nil {
			return err
		}
		updated := entities.InsertChangelogRelease(
			changelog, release.Name, release.Version, changelogEntries(release, byID),
		)
		if updated != changelog {
			if writeErr := ws.Packages.WriteChangelog(ctx, pkg, updated); writeErr != nil {
				return writeErr
			}
		}

		logger.Infof("%s: %s -> %s (%s)", release.Name, pkg.Config.Version, release.Version, release.Type)
	}

	return nil
}

// changelogEntries lists the summaries of the changesets behind a release.
func changelogEntries(release entities.PackageRelease, byID map[string]entities.Changeset) []string {
	entries := make([]string, 0, len(release.Changesets))
	for _, id := range release.Changesets {
		changeset, ok := byID[id]
		if !ok {
			continue
		}
		entries = append(entries, entities.ChangelogEntry(changeset.Commit, changeset.Summary))
	}
	return entries
}
