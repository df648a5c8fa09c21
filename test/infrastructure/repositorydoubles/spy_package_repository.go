//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

// SpyPackageRepository implements repositories.PackageRepository as a configurable spy.
type SpyPackageRepository struct {
	// --- List ---
	Packages entities.Packages
	ListErr  error

	// --- UpdateVersion ---
	UpdateErr      error
	UpdatedVersion map[string]string // package name -> version written

	// --- ReadChangelog / WriteChangelog ---
	Changelogs map[string]string // package name -> content
	WriteErr   error
}

var _ repositories.PackageRepository = (*SpyPackageRepository)(nil)

func (s *SpyPackageRepository) List(_ context.Context) (entities.Packages, error) {
	return s.Packages, s.ListErr
}

func (s *SpyPackageRepository) UpdateVersion(_ context.Context, pkg entities.Package, version string) error {
	if s.UpdatedVersion == nil {
		s.UpdatedVersion = make(map[string]string)
	}
	s.UpdatedVersion[pkg.Name] = version
	return s.UpdateErr
}

func (s *SpyPackageRepository) ReadChangelog(_ context.Context, pkg entities.Package) (string, error) {
	return s.Changelogs[pkg.Name], nil
}

func (s *SpyPackageRepository) WriteChangelog(_ context.Context, pkg entities.Package, content string) error {
	if s.Changelogs == nil {
		s.Changelogs = make(map[string]string)
	}
	s.Changelogs[pkg.Name] = content
	return s.WriteErr
}
