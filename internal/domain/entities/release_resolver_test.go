//go:build unit

package entities_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	builders "github.com/rios0rios0/changesets/test/domain/entitybuilders"
)

func TestResolveRelease(t *testing.T) {
	t.Parallel()

	t.Run("should resolve a single changeset releasing one package", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a", "package-b")
		changeset := builders.NewChangesetBuilder().
			WithRelease("package-a", entities.BumpMinor).
			BuildChangeset()

		// when
		plan, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages, entities.IncrementVersion)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.PackageRelease{{
			Name:       "package-a",
			Type:       entities.BumpMinor,
			Commits:    []string{"dec4a66"},
			Changesets: []string{"abc123xy"},
			Version:    "1.1.0",
		}}, plan.Releases)
		assert.Equal(t, []entities.ChangesetSummary{{Commit: "dec4a66", Summary: "This is a summary"}}, plan.Changesets)
		assert.Empty(t, plan.Deleted)
	})

	t.Run("should keep declaration order for several packages of one changeset", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a", "package-b")
		changeset := builders.NewChangesetBuilder().
			WithID("abc123fh").
			WithCommit("695fad0").
			WithRelease("package-b", entities.BumpMinor).
			WithRelease("package-a", entities.BumpPatch).
			BuildChangeset()

		// when
		plan, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages, nil)

		// then
		require.NoError(t, err)
		require.Len(t, plan.Releases, 2)
		assert.Equal(t, "package-b", plan.Releases[0].Name)
		assert.Equal(t, "1.1.0", plan.Releases[0].Version)
		assert.Equal(t, "package-a", plan.Releases[1].Name)
		assert.Equal(t, "1.0.1", plan.Releases[1].Version)
	})

	t.Run("should escalate and aggregate provenance across changesets", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a", "package-b")
		first := builders.NewChangesetBuilder().
			WithRelease("package-a", entities.BumpMinor).
			BuildChangeset()
		second := builders.NewChangesetBuilder().
			WithID("abc123fh").
			WithCommit("695fad0").
			WithSummary("This is another summary").
			WithRelease("package-a", entities.BumpPatch).
			WithRelease("package-b", entities.BumpMinor).
			BuildChangeset()

		// when
		plan, err := entities.ResolveRelease([]entities.Changeset{first, second}, packages, nil)

		// then
		require.NoError(t, err)
		require.Len(t, plan.Releases, 2)
		assert.Equal(t, entities.PackageRelease{
			Name:       "package-a",
			Type:       entities.BumpMinor,
			Commits:    []string{"dec4a66", "695fad0"},
			Changesets: []string{"abc123xy", "abc123fh"},
			Version:    "1.1.0",
		}, plan.Releases[0])
		assert.Equal(t, []string{"695fad0"}, plan.Releases[1].Commits)
		assert.Len(t, plan.Changesets, 2)
	})

	t.Run("should compute the version once from the escalated bump", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.4.2", "package-a")
		calls := 0
		bump := func(version string, bumpType entities.BumpType) (string, error) {
			calls++
			return entities.IncrementVersion(version, bumpType)
		}
		changesets := []entities.Changeset{
			builders.NewChangesetBuilder().WithID("one").WithRelease("package-a", entities.BumpPatch).BuildChangeset(),
			builders.NewChangesetBuilder().WithID("two").WithRelease("package-a", entities.BumpMajor).BuildChangeset(),
			builders.NewChangesetBuilder().WithID("three").WithRelease("package-a", entities.BumpMinor).BuildChangeset(),
		}

		// when
		plan, err := entities.ResolveRelease(changesets, packages, bump)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
		assert.Equal(t, entities.BumpMajor, plan.Releases[0].Type)
		assert.Equal(t, "2.0.0", plan.Releases[0].Version)
	})

	t.Run("should keep a repeated commit id from different changesets", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a")
		changesets := []entities.Changeset{
			builders.NewChangesetBuilder().WithID("one").WithRelease("package-a", entities.BumpPatch).BuildChangeset(),
			builders.NewChangesetBuilder().WithID("two").WithRelease("package-a", entities.BumpPatch).BuildChangeset(),
		}

		// when
		plan, err := entities.ResolveRelease(changesets, packages, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"dec4a66", "dec4a66"}, plan.Releases[0].Commits)
		assert.Equal(t, []string{"one", "two"}, plan.Releases[0].Changesets)
	})

	t.Run("should skip empty commits", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a")
		changeset := builders.NewChangesetBuilder().
			WithCommit("").
			WithRelease("package-a", entities.BumpPatch).
			BuildChangeset()

		// when
		plan, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages, nil)

		// then
		require.NoError(t, err)
		assert.NotNil(t, plan.Releases[0].Commits)
		assert.Empty(t, plan.Releases[0].Commits)
		assert.Equal(t, "", plan.Changesets[0].Commit)
	})

	t.Run("should merge a dependent into a directly released package", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a", "package-b")
		changesets := []entities.Changeset{
			builders.NewChangesetBuilder().WithID("one").
				WithRelease("package-a", entities.BumpPatch).
				WithDependent("package-b", entities.BumpPatch).
				BuildChangeset(),
			builders.NewChangesetBuilder().WithID("two").WithCommit("695fad0").
				WithRelease("package-b", entities.BumpMinor).
				BuildChangeset(),
		}

		// when
		plan, err := entities.ResolveRelease(changesets, packages, nil)

		// then
		require.NoError(t, err)
		require.Len(t, plan.Releases, 2)
		assert.Equal(t, entities.PackageRelease{
			Name:       "package-b",
			Type:       entities.BumpMinor,
			Commits:    []string{"dec4a66", "695fad0"},
			Changesets: []string{"one", "two"},
			Version:    "1.1.0",
		}, plan.Releases[1])
	})

	t.Run("should contribute provenance once when a changeset lists a package twice", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a")
		changeset := builders.NewChangesetBuilder().
			WithRelease("package-a", entities.BumpPatch).
			WithDependent("package-a", entities.BumpMinor).
			BuildChangeset()

		// when
		plan, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.BumpMinor, plan.Releases[0].Type)
		assert.Equal(t, []string{"dec4a66"}, plan.Releases[0].Commits)
		assert.Equal(t, []string{"abc123xy"}, plan.Releases[0].Changesets)
	})

	t.Run("should report dependents of removed packages as deleted", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a", "package-b")
		changesets := []entities.Changeset{
			builders.NewChangesetBuilder().WithID("one").
				WithRelease("package-a", entities.BumpMinor).
				WithDependent("package-c", entities.BumpPatch).
				WithDependent("package-d", entities.BumpPatch).
				BuildChangeset(),
			builders.NewChangesetBuilder().WithID("two").
				WithRelease("package-b", entities.BumpMinor).
				WithDependent("package-c", entities.BumpMajor).
				BuildChangeset(),
		}

		// when
		plan, err := entities.ResolveRelease(changesets, packages, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"package-c", "package-d"}, plan.Deleted)
		_, released := plan.Release("package-c")
		assert.False(t, released)
		assert.Len(t, plan.Releases, 2)
	})

	t.Run("should fail with a configuration error for an unknown released package", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a")
		changesets := []entities.Changeset{
			builders.NewChangesetBuilder().WithID("one").WithRelease("package-a", entities.BumpMinor).BuildChangeset(),
			builders.NewChangesetBuilder().WithID("two").WithRelease("package-z", entities.BumpMinor).BuildChangeset(),
		}

		// when
		plan, err := entities.ResolveRelease(changesets, packages, nil)

		// then
		require.Error(t, err)
		assert.Nil(t, plan)
		var configErr *entities.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "package-z", configErr.Package)
	})

	t.Run("should fail with a configuration error when the version cannot be bumped", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("not-a-version", "package-a")
		changeset := builders.NewChangesetBuilder().WithRelease("package-a", entities.BumpMinor).BuildChangeset()

		// when
		plan, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages, nil)

		// then
		require.Error(t, err)
		assert.Nil(t, plan)
		var configErr *entities.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "package-a", configErr.Package)
	})

	t.Run("should propagate the error of an injected bump function", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a")
		changeset := builders.NewChangesetBuilder().WithRelease("package-a", entities.BumpMinor).BuildChangeset()
		boom := errors.New("boom")

		// when
		_, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages,
			func(string, entities.BumpType) (string, error) { return "", boom })

		// then
		require.ErrorIs(t, err, boom)
	})

	t.Run("should reject a release without a bump type", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a")
		changeset := entities.Changeset{
			ID:       "broken",
			Releases: []entities.Release{{Name: "package-a"}},
		}

		// when
		_, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages, nil)

		// then
		var configErr *entities.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})

	t.Run("should not mutate the input changesets", func(t *testing.T) {
		t.Parallel()

		// given
		packages := builders.NewTestPackages("1.0.0", "package-a")
		changeset := builders.NewChangesetBuilder().WithRelease("package-a", entities.BumpMinor).BuildChangeset()
		before := builders.NewChangesetBuilder().WithRelease("package-a", entities.BumpMinor).BuildChangeset()

		// when
		_, err := entities.ResolveRelease([]entities.Changeset{changeset}, packages, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, before, changeset)
		assert.Equal(t, "1.0.0", packages["package-a"].Config.Version)
	})

	t.Run("should produce the same commit message on every run", func(t *testing.T) {
		t.Parallel()

		// given
		names := []string{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}
		packages := builders.NewTestPackages("0.1.0", names...)
		builder := builders.NewChangesetBuilder()
		for i := len(names) - 1; i >= 0; i-- {
			builder.WithRelease(names[i], entities.BumpPatch)
		}
		changesets := []entities.Changeset{builder.BuildChangeset()}

		// when
		first, err := entities.ResolveRelease(changesets, packages, nil)
		require.NoError(t, err)
		expected, err := entities.RenderReleaseCommit(first, entities.CommitOptions{})
		require.NoError(t, err)

		// then
		for range 20 {
			plan, resolveErr := entities.ResolveRelease(changesets, packages, nil)
			require.NoError(t, resolveErr)
			message, renderErr := entities.RenderReleaseCommit(plan, entities.CommitOptions{})
			require.NoError(t, renderErr)
			assert.Equal(t, expected, message)
		}
		assert.Equal(t, "p8", first.Releases[0].Name)
	})
}
