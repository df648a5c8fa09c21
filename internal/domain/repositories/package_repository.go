package repositories

import (
	"context"

	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// PackageRepository discovers the packages of a workspace and updates their manifests.
type PackageRepository interface {
	List(ctx context.Context) (entities.Packages, error)

	// UpdateVersion rewrites the version recorded in the package manifest.
	UpdateVersion(ctx context.Context, pkg entities.Package, version string) error

	// ReadChangelog returns the package CHANGELOG.md, or "" when it does not exist.
	ReadChangelog(ctx context.Context, pkg entities.Package) (string, error)

	WriteChangelog(ctx context.Context, pkg entities.Package, content string) error
}
