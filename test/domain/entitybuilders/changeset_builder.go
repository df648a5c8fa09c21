//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/changesets/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ChangesetBuilder helps create test changesets with a fluent interface.
type ChangesetBuilder struct {
	*testkit.BaseBuilder
	id         string
	summary    string
	commit     string
	releases   []entities.Release
	dependents []entities.Release
}

// NewChangesetBuilder creates a new changeset builder with sensible defaults.
func NewChangesetBuilder() *ChangesetBuilder {
	return &ChangesetBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "abc123xy",
		summary:     "This is a summary",
		commit:      "dec4a66",
	}
}

// WithID sets the changeset id.
func (b *ChangesetBuilder) WithID(id string) *ChangesetBuilder {
	b.id = id
	return b
}

// WithSummary sets the summary.
func (b *ChangesetBuilder) WithSummary(summary string) *ChangesetBuilder {
	b.summary = summary
	return b
}

// WithCommit sets the originating commit.
func (b *ChangesetBuilder) WithCommit(commit string) *ChangesetBuilder {
	b.commit = commit
	return b
}

// WithRelease appends a release request.
func (b *ChangesetBuilder) WithRelease(name string, bump entities.BumpType) *ChangesetBuilder {
	b.releases = append(b.releases, entities.Release{Name: name, Type: bump})
	return b
}

// WithDependent appends a dependent release request.
func (b *ChangesetBuilder) WithDependent(name string, bump entities.BumpType) *ChangesetBuilder {
	b.dependents = append(b.dependents, entities.Release{Name: name, Type: bump})
	return b
}

// Build creates the changeset (satisfies testkit.Builder interface).
func (b *ChangesetBuilder) Build() interface{} {
	return b.BuildChangeset()
}

// BuildChangeset creates the changeset with a concrete return type.
func (b *ChangesetBuilder) BuildChangeset() entities.Changeset {
	return entities.Changeset{
		ID:         b.id,
		Summary:    b.summary,
		Commit:     b.commit,
		Releases:   append([]entities.Release{}, b.releases...),
		Dependents: append([]entities.Release{}, b.dependents...),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ChangesetBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "abc123xy"
	b.summary = "This is a summary"
	b.commit = "dec4a66"
	b.releases = nil
	b.dependents = nil
	return b
}

// Clone creates a deep copy of the ChangesetBuilder.
func (b *ChangesetBuilder) Clone() testkit.Builder {
	return &ChangesetBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		summary:     b.summary,
		commit:      b.commit,
		releases:    append([]entities.Release{}, b.releases...),
		dependents:  append([]entities.Release{}, b.dependents...),
	}
}
