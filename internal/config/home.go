package config

import (
	"os"
	"path/filepath"
)

// configHome returns the directory glance reads its config file from
// Priority order:
//  1. XDG_CONFIG_HOME environment variable (if set)
//  2. .config under the user's home directory
// Returns an empty string when neither location can be resolved
func configHome() string {
	// Try env var first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "glance")
	}

	// Fall back to the conventional location under the home directory
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "glance")
}
