package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

const (
	manifestFile  = "package.json"
	changelogFile = "CHANGELOG.md"
	fileMode      = 0o644
)

// versionFieldPattern matches the first "version": "..." pair of a manifest.
var versionFieldPattern = regexp.MustCompile(`("version"\s*:\s*")([^"]*)(")`) //nolint:gochecknoglobals // compiled once

// PackageRepository discovers npm-style packages (a directory with a
// package.json) under the configured glob patterns.
type PackageRepository struct {
	root  string
	globs []string
}

// NewPackageRepository creates a repository for the workspace at root.
func NewPackageRepository(root string, globs []string) repositories.PackageRepository {
	return &PackageRepository{root: root, globs: globs}
}

// List reads the manifest of every matching package directory.
func (r *PackageRepository) List(ctx context.Context) (entities.Packages, error) {
	dirs, err := r.packageDirs()
	if err != nil {
		return nil, err
	}

	packages := make(entities.Packages, len(dirs))
	for _, dir := range dirs {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		pkg, ok, loadErr := r.load(dir)
		if loadErr != nil {
			return nil, loadErr
		}
		if !ok {
			continue
		}
		if existing, dup := packages[pkg.Name]; dup {
			return nil, fmt.Errorf(
				"package %q is declared twice (%s and %s)",
				pkg.Name, existing.Manifest, pkg.Manifest,
			)
		}
		packages[pkg.Name] = pkg
	}

	logger.Debugf("Discovered %d packages in %s", len(packages), r.root)
	return packages, nil
}

// UpdateVersion replaces the version in place so the rest of the manifest
// keeps its formatting.
func (r *PackageRepository) UpdateVersion(ctx context.Context, pkg entities.Package, version string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	path := filepath.Join(r.root, pkg.Manifest)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	updated, err := replaceVersion(string(data), version)
	if err != nil {
		return fmt.Errorf("manifest %q: %w", path, err)
	}

	if writeErr := os.WriteFile(path, []byte(updated), fileMode); writeErr != nil {
		return fmt.Errorf("failed to write manifest %q: %w", path, writeErr)
	}
	return nil
}

// ReadChangelog returns the package changelog, or "" when there is none yet.
func (r *PackageRepository) ReadChangelog(ctx context.Context, pkg entities.Package) (string, error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	data, err := os.ReadFile(filepath.Join(r.root, pkg.Dir, changelogFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read changelog of %q: %w", pkg.Name, err)
	}
	return string(data), nil
}

func (r *PackageRepository) WriteChangelog(ctx context.Context, pkg entities.Package, content string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	path := filepath.Join(r.root, pkg.Dir, changelogFile)
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return fmt.Errorf("failed to write changelog of %q: %w", pkg.Name, err)
	}
	return nil
}

// packageDirs expands the globs into a sorted, deduplicated list of
// directories relative to the workspace root.
func (r *PackageRepository) packageDirs() ([]string, error) {
	seen := make(map[string]struct{})
	dirs := make([]string, 0)

	for _, pattern := range r.globs {
		matches, err := filepath.Glob(filepath.Join(r.root, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid package glob %q: %w", pattern, err)
		}

		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil || !info.IsDir() {
				continue
			}
			rel, relErr := filepath.Rel(r.root, match)
			if relErr != nil {
				return nil, fmt.Errorf("failed to resolve %q: %w", match, relErr)
			}
			if _, ok := seen[rel]; ok {
				continue
			}
			seen[rel] = struct{}{}
			dirs = append(dirs, rel)
		}
	}

	sort.Strings(dirs)
	return dirs, nil
}

// load reads dir/package.json. Directories without a manifest are skipped.
func (r *PackageRepository) load(dir string) (entities.Package, bool, error) {
	manifest := filepath.Join(dir, manifestFile)

	data, err := os.ReadFile(filepath.Join(r.root, manifest))
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("Skipping %s: no %s", dir, manifestFile)
		return entities.Package{}, false, nil
	}
	if err != nil {
		return entities.Package{}, false, fmt.Errorf("failed to read manifest %q: %w", manifest, err)
	}

	var config entities.PackageConfig
	if decodeErr := json.Unmarshal(data, &config); decodeErr != nil {
		return entities.Package{}, false, fmt.Errorf("failed to parse manifest %q: %w", manifest, decodeErr)
	}

	if config.Name == "" {
		return entities.Package{}, false, fmt.Errorf("manifest %q has no name", manifest)
	}
	if !semver.IsValid(normalizeVersion(config.Version)) {
		return entities.Package{}, false, fmt.Errorf(
			"manifest %q has an invalid version %q", manifest, config.Version,
		)
	}

	return entities.Package{
		Name:     config.Name,
		Config:   config,
		Dir:      dir,
		Manifest: manifest,
	}, true, nil
}

// replaceVersion swaps the value of the first "version" field.
func replaceVersion(content, version string) (string, error) {
	loc := versionFieldPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", errors.New(`no "version" field found`)
	}
	// loc[4]:loc[5] is the second capture group, the version itself
	return content[:loc[4]] + version + content[loc[5]:], nil
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
