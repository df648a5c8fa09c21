//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

// StubWorkspaceProvider hands out a workspace built from spies.
type StubWorkspaceProvider struct {
	Changesets *SpyChangesetRepository
	Packages   *SpyPackageRepository
	Git        *SpyGitRepository
	OpenErr    error

	// spy: roots that were opened
	OpenedRoots []string
}

var _ repositories.WorkspaceProvider = (*StubWorkspaceProvider)(nil)

// NewStubWorkspaceProvider creates a provider with empty spies.
func NewStubWorkspaceProvider() *StubWorkspaceProvider {
	return &StubWorkspaceProvider{
		Changesets: &SpyChangesetRepository{},
		Packages:   &SpyPackageRepository{},
		Git:        &SpyGitRepository{},
	}
}

func (s *StubWorkspaceProvider) Open(root string, _ *entities.Settings) (*repositories.Workspace, error) {
	s.OpenedRoots = append(s.OpenedRoots, root)
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	return &repositories.Workspace{
		Root:       root,
		Changesets: s.Changesets,
		Packages:   s.Packages,
		Git:        s.Git,
	}, nil
}
