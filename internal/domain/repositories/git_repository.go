package repositories

import (
	"context"

	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// GitRepository is the slice of git the release flow needs.
type GitRepository interface {
	// HeadShortHash returns the abbreviated hash of HEAD.
	HeadShortHash(ctx context.Context) (string, error)

	// CommitAll stages every change in the worktree and commits it.
	// It returns the abbreviated hash of the new commit.
	CommitAll(ctx context.Context, message string, author entities.AuthorConfig) (string, error)

	// Tag creates an annotated tag on HEAD.
	Tag(ctx context.Context, name, message string, author entities.AuthorConfig) error
}
