package entities

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// BumpFunc computes the next version of a package from its current version.
type BumpFunc func(version string, bump BumpType) (string, error)

// IncrementVersion applies a semver bump: major resets minor and patch, minor
// resets patch. Pre-release and build metadata are dropped.
func IncrementVersion(version string, bump BumpType) (string, error) {
	current, err := semver.StrictNewVersion(version)
	if err != nil {
		return "", fmt.Errorf("invalid semantic version %q: %w", version, err)
	}

	base := semver.New(current.Major(), current.Minor(), current.Patch(), "", "")

	var next semver.Version
	switch bump {
	case BumpMajor:
		next = base.IncMajor()
	case BumpMinor:
		next = base.IncMinor()
	case BumpPatch:
		next = base.IncPatch()
	default:
		return "", fmt.Errorf("cannot apply bump type %s to %q", bump, version)
	}

	return next.String(), nil
}
