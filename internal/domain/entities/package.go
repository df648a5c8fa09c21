package entities

import "sort"

// PackageConfig is the subset of a package manifest the release flow reads.
type PackageConfig struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Package is a workspace package and where its manifest lives.
type Package struct {
	Name     string
	Config   PackageConfig
	Dir      string // directory containing the manifest, relative to the workspace root
	Manifest string // manifest file path, relative to the workspace root
}

// Packages indexes the workspace packages by name.
type Packages map[string]Package

// NewPackages builds an index from a list of packages. Later duplicates win.
func NewPackages(list ...Package) Packages {
	index := make(Packages, len(list))
	for _, pkg := range list {
		index[pkg.Name] = pkg
	}
	return index
}

// Names returns the package names sorted alphabetically.
func (p Packages) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
