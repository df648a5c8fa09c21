package changesetfs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/changesets/internal/domain/entities"
	"github.com/rios0rios0/changesets/internal/domain/repositories"
)

const (
	changesJSONFile = "changes.json"
	changesYAMLFile = "changes.yaml"
	summaryFile     = "changes.md"
	dirMode         = 0o755
	fileMode        = 0o644
)

// changesFile is the on-disk shape of changes.json / changes.yaml.
type changesFile struct {
	Commit     string             `json:"commit,omitempty" yaml:"commit,omitempty"`
	Releases   []entities.Release `json:"releases" yaml:"releases"`
	Dependents []entities.Release `json:"dependents" yaml:"dependents"`
}

// ChangesetRepository stores every changeset as a directory named after its id:
//
//	.changeset/<id>/changes.json   releases and dependents
//	.changeset/<id>/changes.md     summary
type ChangesetRepository struct {
	dir string
}

// NewChangesetRepository creates a repository rooted at the changeset directory.
func NewChangesetRepository(dir string) repositories.ChangesetRepository {
	return &ChangesetRepository{dir: dir}
}

// List loads every changeset. Broken changesets do not stop the scan: all of
// their errors are returned together so they can be fixed in one go.
func (r *ChangesetRepository) List(ctx context.Context) ([]entities.Changeset, error) {
	entries, err := os.ReadDir(r.dir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debugf("Changeset directory %q does not exist", r.dir)
		return []entities.Changeset{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read changeset directory %q: %w", r.dir, err)
	}

	var result *multierror.Error
	changesets := make([]entities.Changeset, 0, len(entries))

	// os.ReadDir returns entries sorted by file name, which keeps List ordered by id
	for _, entry := range entries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if !entry.IsDir() {
			continue
		}

		changeset, loadErr := r.load(entry.Name())
		if loadErr != nil {
			result = multierror.Append(result, loadErr)
			continue
		}
		changesets = append(changesets, changeset)
	}

	if aggregated := result.ErrorOrNil(); aggregated != nil {
		return nil, aggregated
	}
	return changesets, nil
}

// Save writes changes.json and changes.md into a new directory.
func (r *ChangesetRepository) Save(ctx context.Context, changeset entities.Changeset) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if changeset.ID == "" || strings.ContainsAny(changeset.ID, `/\`) {
		return fmt.Errorf("invalid changeset id %q", changeset.ID)
	}

	if err := os.MkdirAll(r.dir, dirMode); err != nil {
		return fmt.Errorf("failed to create changeset directory %q: %w", r.dir, err)
	}

	changesetDir := filepath.Join(r.dir, changeset.ID)
	if err := os.Mkdir(changesetDir, dirMode); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("changeset %q already exists", changeset.ID)
		}
		return fmt.Errorf("failed to create changeset %q: %w", changeset.ID, err)
	}

	data, err := json.MarshalIndent(changesFile{
		Commit:     changeset.Commit,
		Releases:   nonNil(changeset.Releases),
		Dependents: nonNil(changeset.Dependents),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode changeset %q: %w", changeset.ID, err)
	}

	if writeErr := os.WriteFile(filepath.Join(changesetDir, changesJSONFile), append(data, '\n'), fileMode); writeErr != nil {
		return fmt.Errorf("failed to write changeset %q: %w", changeset.ID, writeErr)
	}

	summary := strings.TrimSpace(changeset.Summary) + "\n"
	if writeErr := os.WriteFile(filepath.Join(changesetDir, summaryFile), []byte(summary), fileMode); writeErr != nil {
		return fmt.Errorf("failed to write summary of changeset %q: %w", changeset.ID, writeErr)
	}

	logger.Debugf("Saved changeset %q in %s", changeset.ID, changesetDir)
	return nil
}

// Delete removes the directory of a consumed changeset.
func (r *ChangesetRepository) Delete(ctx context.Context, id string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if id == "" || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid changeset id %q", id)
	}

	changesetDir := filepath.Join(r.dir, id)
	if _, err := os.Stat(changesetDir); err != nil {
		return fmt.Errorf("changeset %q not found: %w", id, err)
	}
	if err := os.RemoveAll(changesetDir); err != nil {
		return fmt.Errorf("failed to delete changeset %q: %w", id, err)
	}
	return nil
}

// load reads one changeset directory.
func (r *ChangesetRepository) load(id string) (entities.Changeset, error) {
	changesetDir := filepath.Join(r.dir, id)

	changes, err := readChanges(changesetDir)
	if err != nil {
		return entities.Changeset{}, fmt.Errorf("changeset %q: %w", id, err)
	}

	summary, err := os.ReadFile(filepath.Join(changesetDir, summaryFile))
	if err != nil {
		return entities.Changeset{}, fmt.Errorf("changeset %q: failed to read %s: %w", id, summaryFile, err)
	}

	if len(changes.Releases) == 0 {
		return entities.Changeset{}, fmt.Errorf("changeset %q releases no package", id)
	}

	return entities.Changeset{
		ID:         id,
		Summary:    strings.TrimSpace(string(summary)),
		Commit:     changes.Commit,
		Releases:   nonNil(changes.Releases),
		Dependents: nonNil(changes.Dependents),
	}, nil
}

// readChanges decodes changes.json, or changes.yaml when there is no JSON file.
func readChanges(changesetDir string) (changesFile, error) {
	var changes changesFile

	data, err := os.ReadFile(filepath.Join(changesetDir, changesJSONFile))
	if err == nil {
		if decodeErr := json.Unmarshal(data, &changes); decodeErr != nil {
			return changes, fmt.Errorf("failed to parse %s: %w", changesJSONFile, decodeErr)
		}
		return changes, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return changes, fmt.Errorf("failed to read %s: %w", changesJSONFile, err)
	}

	data, err = os.ReadFile(filepath.Join(changesetDir, changesYAMLFile))
	if err != nil {
		return changes, fmt.Errorf("expected %s or %s: %w", changesJSONFile, changesYAMLFile, err)
	}
	if decodeErr := yaml.Unmarshal(data, &changes); decodeErr != nil {
		return changes, fmt.Errorf("failed to parse %s: %w", changesYAMLFile, decodeErr)
	}
	return changes, nil
}

func nonNil(releases []entities.Release) []entities.Release {
	if releases == nil {
		return []entities.Release{}
	}
	return releases
}
