package repositories

import (
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	domainRepos "github.com/rios0rios0/changesets/internal/domain/repositories"
	"github.com/rios0rios0/changesets/internal/infrastructure/repositories/changesetfs"
	"github.com/rios0rios0/changesets/internal/infrastructure/repositories/gitrepo"
	"github.com/rios0rios0/changesets/internal/infrastructure/repositories/workspace"
)

// FileWorkspaceProvider opens workspaces stored on the local file system.
type FileWorkspaceProvider struct{}

// NewFileWorkspaceProvider creates a new FileWorkspaceProvider.
func NewFileWorkspaceProvider() *FileWorkspaceProvider {
	return &FileWorkspaceProvider{}
}

// Open wires the file-backed repositories for the workspace at root.
func (p *FileWorkspaceProvider) Open(root string, settings *entities.Settings) (*domainRepos.Workspace, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	changesetDir := settings.ChangesetDir
	if !filepath.IsAbs(changesetDir) {
		changesetDir = filepath.Join(absRoot, changesetDir)
	}

	return &domainRepos.Workspace{
		Root:       absRoot,
		Changesets: changesetfs.NewChangesetRepository(changesetDir),
		Packages:   workspace.NewPackageRepository(absRoot, settings.Packages),
		Git:        gitrepo.NewGitRepository(absRoot),
	}, nil
}
