package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultChangesetDir = ".changeset"
	defaultPackageGlob  = "packages/*"
)

// Settings is the top-level configuration for changesets.
type Settings struct {
	ChangesetDir string       `yaml:"changeset_dir"`
	Packages     []string     `yaml:"packages"` // glob patterns of package directories
	Commit       bool         `yaml:"commit"`   // commit the release when running "version"
	SkipCI       bool         `yaml:"skip_ci"`
	Tag          bool         `yaml:"tag"` // tag every released package as name@version
	Author       AuthorConfig `yaml:"author"`
}

// AuthorConfig identifies who signs release commits and tags.
type AuthorConfig struct {
	Name  string `yaml:"name"`  // Inline or ${ENV_VAR}
	Email string `yaml:"email"` // Inline or ${ENV_VAR}
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`) //nolint:gochecknoglobals // compiled once

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		ChangesetDir: defaultChangesetDir,
		Packages:     []string{defaultPackageGlob},
		Author: AuthorConfig{
			Name:  "changesets",
			Email: "changesets@users.noreply.github.com",
		},
	}
}

// NewSettings reads and parses a configuration file, expanding environment
// variables and filling defaults for missing values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Author.Name = expandEnv(settings.Author.Name)
	settings.Author.Email = expandEnv(settings.Author.Email)

	if validateErr := validateSettings(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
	}

	patterns := []string{
		".changesets.yaml",
		".changesets.yml",
		"changesets.yaml",
		"changesets.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadSettings loads the given file, or the auto-detected one, falling back to
// the defaults when there is none.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func validateSettings(settings *Settings) error {
	if settings.ChangesetDir == "" {
		return errors.New("changeset_dir must not be empty")
	}
	if len(settings.Packages) == 0 {
		return errors.New("at least one package glob must be configured")
	}
	for i, pattern := range settings.Packages {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("packages[%d] is not a valid glob %q: %w", i, pattern, err)
		}
	}
	if settings.Commit && (settings.Author.Name == "" || settings.Author.Email == "") {
		return errors.New("author.name and author.email are required when commit is enabled")
	}
	return nil
}
