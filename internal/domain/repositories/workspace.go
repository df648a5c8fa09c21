package repositories

import (
	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// Workspace groups the repositories of one checked-out monorepo.
type Workspace struct {
	Root       string
	Changesets ChangesetRepository
	Packages   PackageRepository
	Git        GitRepository
}

// WorkspaceProvider opens the workspace rooted at a directory.
type WorkspaceProvider interface {
	Open(root string, settings *entities.Settings) (*Workspace, error)
}
