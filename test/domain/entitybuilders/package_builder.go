//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/changesets/internal/domain/entities"
)

// NewTestPackages builds a package index where every package has the given version.
func NewTestPackages(version string, names ...string) entities.Packages {
	list := make([]entities.Package, 0, len(names))
	for _, name := range names {
		list = append(list, entities.Package{
			Name:     name,
			Config:   entities.PackageConfig{Name: name, Version: version},
			Dir:      "packages/" + name,
			Manifest: "packages/" + name + "/package.json",
		})
	}
	return entities.NewPackages(list...)
}
