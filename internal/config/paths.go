package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for kernup's own files.
type Paths struct {
	// SettingsFile is the path to the settings file (~/.kernup/config.yaml).
	SettingsFile string

	// HomeDir is the kernup home directory (~/.kernup).
	HomeDir string
}

// DefaultPaths returns the default paths for kernup.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	kernupHome := filepath.Join(homeDir, ".kernup")

	return &Paths{
		SettingsFile: filepath.Join(kernupHome, "config.yaml"),
		HomeDir:      kernupHome,
	}, nil
}

// SettingsFile returns the settings file path.
// If KERNUP_CONFIG is set, it takes precedence.
func SettingsFile() (string, error) {
	if envPath := os.Getenv("KERNUP_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.SettingsFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported, return as-is.
	return path, nil
}
