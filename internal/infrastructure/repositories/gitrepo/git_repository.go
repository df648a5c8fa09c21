package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

const shortHashLength = 7

// GitRepository implements repositories.GitRepository with go-git, so no git
// binary is needed.
type GitRepository struct {
	root string
	now  func() time.Time
}

// NewGitRepository creates a repository for the git checkout containing root.
func NewGitRepository(root string) repositories.GitRepository {
	return &GitRepository{root: root, now: time.Now}
}

func (r *GitRepository) HeadShortHash(ctx context.Context) (string, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	repo, err := r.open()
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return shortHash(head.Hash()), nil
}

func (r *GitRepository) CommitAll(
	ctx context.Context,
	message string,
	author entities.AuthorConfig,
) (string, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	repo, err := r.open()
	if err != nil {
		return "", err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to open worktree: %w", err)
	}

	if addErr := worktree.AddWithOptions(&git.AddOptions{All: true}); addErr != nil {
		return "", fmt.Errorf("failed to stage changes: %w", addErr)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: r.signature(author),
	})
	if err != nil {
		return "", fmt.Errorf("failed to commit: %w", err)
	}

	logger.Debugf("Created commit %s", hash)
	return shortHash(hash), nil
}

func (r *GitRepository) Tag(
	ctx context.Context,
	name, message string,
	author entities.AuthorConfig,
) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	repo, err := r.open()
	if err != nil {
		return err
	}

	head, err := repo.Head()
	if err != nil {
		return fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if _, tagErr := repo.CreateTag(name, head.Hash(), &git.CreateTagOptions{
		Tagger:  r.signature(author),
		Message: message,
	}); tagErr != nil {
		if errors.Is(tagErr, git.ErrTagExists) {
			return fmt.Errorf("tag %q already exists", name)
		}
		return fmt.Errorf("failed to create tag %q: %w", name, tagErr)
	}
	return nil
}

func (r *GitRepository) open() (*git.Repository, error) {
	repo, err := git.PlainOpenWithOptions(r.root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", r.root, err)
	}
	return repo, nil
}

func (r *GitRepository) signature(author entities.AuthorConfig) *object.Signature {
	return &object.Signature{
		Name:  author.Name,
		Email: author.Email,
		When:  r.now(),
	}
}

func shortHash(hash plumbing.Hash) string {
	return hash.String()[:shortHashLength]
}
