//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

// SpyGitRepository implements repositories.GitRepository as a configurable spy.
type SpyGitRepository struct {
	// --- HeadShortHash ---
	Head    string
	HeadErr error

	// --- CommitAll ---
	CommitHash     string
	CommitErr      error
	CommitMessages []string

	// --- Tag ---
	TagErr error
	Tags   []string
}

var _ repositories.GitRepository = (*SpyGitRepository)(nil)

func (s *SpyGitRepository) HeadShortHash(_ context.Context) (string, error) {
	return s.Head, s.HeadErr
}

func (s *SpyGitRepository) CommitAll(_ context.Context, message string, _ entities.AuthorConfig) (string, error) {
	s.CommitMessages = append(s.CommitMessages, message)
	return s.CommitHash, s.CommitErr
}

func (s *SpyGitRepository) Tag(_ context.Context, name, _ string, _ entities.AuthorConfig) error {
	s.Tags = append(s.Tags, name)
	return s.TagErr
}
