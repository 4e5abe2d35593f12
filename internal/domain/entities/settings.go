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

// Settings is the optional configuration file for vitepatch.
type Settings struct {
	ProjectDir string   `yaml:"project_dir"` // Directory the node_modules lookup starts from
	NodePath   []string `yaml:"node_path"`   // Extra lookup directories, like NODE_PATH
	Verbose    bool     `yaml:"verbose"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment variables
// in every path.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.ProjectDir = expandEnv(settings.ProjectDir)
	for i := range settings.NodePath {
		settings.NodePath[i] = expandEnv(settings.NodePath[i])
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".vitepatch.yaml",
		".vitepatch.yml",
		"vitepatch.yaml",
		"vitepatch.yml",
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

// NodePathFromEnv splits the NODE_PATH environment variable into lookup directories.
func NodePathFromEnv() []string {
	raw := os.Getenv("NODE_PATH")
	if raw == "" {
		return nil
	}
	var dirs []string
	for _, dir := range filepath.SplitList(raw) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// expandEnv expands ${ENV_VAR} references, leaving unset variables empty.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

// validate checks the configured lookup directories.
func validate(settings *Settings) error {
	for i, dir := range settings.NodePath {
		if dir == "" {
			return fmt.Errorf("node_path[%d] is empty after environment expansion", i)
		}
	}
	return nil
}
