package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigDir is the directory under $HOME holding admint files
	DefaultConfigDir = ".admint"
	// DefaultConfigName is the file used when no config is named
	DefaultConfigName = "admint.yaml"
	// ConfigDirEnv overrides the config directory
	ConfigDirEnv = "ADMINT_CONFIG_DIR"
)

// GetConfigDir returns $ADMINT_CONFIG_DIR, or ~/.admint when it is unset
func GetConfigDir() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DefaultConfigDir), nil
}

// Path maps a config name to a file path without touching the filesystem.
//
//	""            -> <config dir>/admint.yaml
//	"/abs/x.yaml" -> unchanged
//	"lab"         -> <config dir>/lab.yaml
func Path(name string) (string, error) {
	if filepath.IsAbs(name) {
		return name, nil
	}

	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	switch {
	case name == "":
		name = DefaultConfigName
	case !isYAMLName(name):
		name += ".yaml"
	}
	return filepath.Join(dir, name), nil
}

// FindConfig resolves name with Path and requires the file to exist. A missing
// file wraps ErrNotFound.
func FindConfig(name string) (string, error) {
	path, err := Path(name)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	case err != nil:
		return "", fmt.Errorf("failed to stat config file %s: %w", path, err)
	case info.IsDir():
		return "", fmt.Errorf("config path %s is a directory", path)
	}
	return path, nil
}

// EnsureConfigDir creates the config directory if needed and returns it
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return dir, nil
}

// isYAMLName reports whether a config name already carries a YAML extension
func isYAMLName(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}
