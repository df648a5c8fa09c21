//go:build unit

package commands_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/changesets/internal/domain/commands"
	"github.com/rios0rios0/changesets/internal/domain/entities"
	builders "github.com/rios0rios0/changesets/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/changesets/test/infrastructure/repositorydoubles"
)

func newReleaseWorkspace() *doubles.StubWorkspaceProvider {
	provider := doubles.NewStubWorkspaceProvider()
	provider.Packages.Packages = builders.NewTestPackages("1.0.0", "package-a", "package-b")
	provider.Packages.Changelogs = map[string]string{
		"package-a": "# package-a\n\n## 1.0.0\n\n- initial release\n",
	}
	provider.Changesets.Changesets = []entities.Changeset{
		builders.NewChangesetBuilder().
			WithRelease("package-a", entities.BumpMinor).
			BuildChangeset(),
		builders.NewChangesetBuilder().
			WithID("abc123fh").
			WithCommit("695fad0").
			WithSummary("This is another summary").
			WithRelease("package-a", entities.BumpPatch).
			WithRelease("package-b", entities.BumpMinor).
			BuildChangeset(),
	}
	provider.Git.CommitHash = "1234567"
	return provider
}

func TestVersionCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should apply the release without committing by default", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newReleaseWorkspace()
		cmd := commands.NewVersionCommand(provider, entities.IncrementVersion)

		// when
		result, err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result.Message, "RELEASING: Releasing 2 package(s)\n"))
		assert.Empty(t, result.Commit)
		assert.Equal(t, map[string]string{"package-a": "1.1.0", "package-b": "1.1.0"}, provider.Packages.UpdatedVersion)
		assert.Equal(t, "# package-a\n\n"+
			"## 1.1.0\n\n- dec4a66: This is a summary\n- 695fad0: This is another summary\n\n"+
			"## 1.0.0\n\n- initial release\n", provider.Packages.Changelogs["package-a"])
		assert.Equal(t, "# package-b\n\n## 1.1.0\n\n- 695fad0: This is another summary\n",
			provider.Packages.Changelogs["package-b"])
		assert.Equal(t, []string{"abc123xy", "abc123fh"}, provider.Changesets.Deleted)
		assert.Empty(t, provider.Git.CommitMessages)
	})

	t.Run("should commit and tag when configured", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newReleaseWorkspace()
		settings := entities.DefaultSettings()
		settings.Commit = true
		settings.Tag = true
		cmd := commands.NewVersionCommand(provider, entities.IncrementVersion)

		// when
		result, err := cmd.Execute(context.Background(), settings, commands.VersionOptions{SkipCI: true})

		// then
		require.NoError(t, err)
		assert.Equal(t, "1234567", result.Commit)
		require.Len(t, provider.Git.CommitMessages, 1)
		assert.Equal(t, result.Message, provider.Git.CommitMessages[0])
		assert.True(t, strings.HasSuffix(result.Message, "\n\n[skip ci]"))
		assert.Equal(t, []string{"package-a@1.1.0", "package-b@1.1.0"}, provider.Git.Tags)
	})

	t.Run("should only render the message on dry run", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newReleaseWorkspace()
		settings := entities.DefaultSettings()
		settings.Commit = true
		cmd := commands.NewVersionCommand(provider, entities.IncrementVersion)

		// when
		result, err := cmd.Execute(context.Background(), settings, commands.VersionOptions{DryRun: true})

		// then
		require.NoError(t, err)
		assert.NotEmpty(t, result.Message)
		assert.Empty(t, provider.Packages.UpdatedVersion)
		assert.Empty(t, provider.Changesets.Deleted)
		assert.Empty(t, provider.Git.CommitMessages)
	})

	t.Run("should return ErrNoChangesets when nothing is pending", func(t *testing.T) {
		t.Parallel()

		// given
		provider := doubles.NewStubWorkspaceProvider()
		cmd := commands.NewVersionCommand(provider, entities.IncrementVersion)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionOptions{})

		// then
		require.ErrorIs(t, err, commands.ErrNoChangesets)
	})

	t.Run("should not touch the workspace when resolution fails", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newReleaseWorkspace()
		provider.Changesets.Changesets = append(provider.Changesets.Changesets,
			builders.NewChangesetBuilder().WithID("bad").WithRelease("package-x", entities.BumpMajor).BuildChangeset())
		cmd := commands.NewVersionCommand(provider, entities.IncrementVersion)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionOptions{})

		// then
		var configErr *entities.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Empty(t, provider.Packages.UpdatedVersion)
		assert.Empty(t, provider.Changesets.Deleted)
	})

	t.Run("should stop when a manifest cannot be updated", func(t *testing.T) {
		t.Parallel()

		// given
		provider := newReleaseWorkspace()
		provider.Packages.UpdateErr = errors.New("read-only file system")
		cmd := commands.NewVersionCommand(provider, entities.IncrementVersion)

		// when
		_, err := cmd.Execute(context.Background(), entities.DefaultSettings(), commands.VersionOptions{})

		// then
		require.Error(t, err)
		assert.Empty(t, provider.Changesets.Deleted)
	})
}
