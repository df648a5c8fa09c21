//go:build unit

package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/changesets/internal/domain/entities"
)

func TestBumpType(t *testing.T) {
	t.Parallel()

	t.Run("should order patch below minor below major", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Equal(t, entities.BumpMinor, entities.BumpPatch.Max(entities.BumpMinor))
		assert.Equal(t, entities.BumpMajor, entities.BumpMajor.Max(entities.BumpMinor))
		assert.Equal(t, entities.BumpPatch, entities.BumpPatch.Max(entities.BumpPatch))
	})

	t.Run("should parse bump names case-insensitively", func(t *testing.T) {
		t.Parallel()

		// when
		bump, err := entities.ParseBumpType(" Major ")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.BumpMajor, bump)
	})

	t.Run("should reject unknown bump names", func(t *testing.T) {
		t.Parallel()

		// when
		bump, err := entities.ParseBumpType("huge")

		// then
		require.Error(t, err)
		assert.False(t, bump.Valid())
	})

	t.Run("should decode releases from JSON", func(t *testing.T) {
		t.Parallel()

		// given
		raw := `[{"name":"package-a","type":"minor"},{"name":"package-b","type":"patch"}]`

		// when
		var releases []entities.Release
		err := json.Unmarshal([]byte(raw), &releases)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Release{
			{Name: "package-a", Type: entities.BumpMinor},
			{Name: "package-b", Type: entities.BumpPatch},
		}, releases)
	})

	t.Run("should decode releases from YAML", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "- name: package-a\n  type: major\n"

		// when
		var releases []entities.Release
		err := yaml.Unmarshal([]byte(raw), &releases)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.BumpMajor, releases[0].Type)
	})

	t.Run("should refuse to encode an invalid bump type", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := json.Marshal(entities.Release{Name: "package-a"})

		// then
		require.Error(t, err)
	})
}

func TestIncrementVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		bump     entities.BumpType
		expected string
	}{
		{name: "patch", version: "1.0.0", bump: entities.BumpPatch, expected: "1.0.1"},
		{name: "minor resets patch", version: "1.2.3", bump: entities.BumpMinor, expected: "1.3.0"},
		{name: "major resets minor and patch", version: "1.2.3", bump: entities.BumpMajor, expected: "2.0.0"},
		{name: "pre-release is dropped", version: "1.2.3-beta.1", bump: entities.BumpPatch, expected: "1.2.4"},
		{name: "zero major", version: "0.0.9", bump: entities.BumpMinor, expected: "0.1.0"},
	}

	for _, tt := range tests {
		t.Run("should bump "+tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			next, err := entities.IncrementVersion(tt.version, tt.bump)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected, next)
		})
	}

	t.Run("should reject an invalid version", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.IncrementVersion("1.x", entities.BumpPatch)

		// then
		require.Error(t, err)
	})

	t.Run("should reject an invalid bump type", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.IncrementVersion("1.0.0", entities.BumpInvalid)

		// then
		require.Error(t, err)
	})
}
