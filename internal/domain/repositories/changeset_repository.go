package repositories

import (
	"context"

	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// ChangesetRepository stores the pending changesets of a workspace.
type ChangesetRepository interface {
	// List returns every pending changeset, sorted by id.
	List(ctx context.Context) ([]entities.Changeset, error)

	// Save writes a new changeset. It fails if the id is already taken.
	Save(ctx context.Context, changeset entities.Changeset) error

	// Delete removes a consumed changeset.
	Delete(ctx context.Context, id string) error
}
