//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

// SpyChangesetRepository implements repositories.ChangesetRepository as a configurable spy.
type SpyChangesetRepository struct {
	// --- List ---
	Changesets []entities.Changeset
	ListErr    error

	// --- Save ---
	SaveErr error
	Saved   []entities.Changeset

	// --- Delete ---
	DeleteErr error
	Deleted   []string
}

var _ repositories.ChangesetRepository = (*SpyChangesetRepository)(nil)

func (s *SpyChangesetRepository) List(_ context.Context) ([]entities.Changeset, error) {
	return s.Changesets, s.ListErr
}

func (s *SpyChangesetRepository) Save(_ context.Context, changeset entities.Changeset) error {
	s.Saved = append(s.Saved, changeset)
	return s.SaveErr
}

func (s *SpyChangesetRepository) Delete(_ context.Context, id string) error {
	s.Deleted = append(s.Deleted, id)
	return s.DeleteErr
}
