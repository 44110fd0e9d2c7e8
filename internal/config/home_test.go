package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestConfigHomeWithEnvVar tests XDG_CONFIG_HOME takes precedence
func TestConfigHomeWithEnvVar(t *testing.T) {
	customHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", customHome)

	home := configHome()

	want := filepath.Join(customHome, "glance")
	if home != want {
		t.Errorf("configHome() = %q, want %q", home, want)
	}
}

// TestConfigHomeFallsBackToHomeDir tests the ~/.config fallback
func TestConfigHomeFallsBackToHomeDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	userHome, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory available: %v", err)
	}

	home := configHome()

	want := filepath.Join(userHome, ".config", "glance")
	if home != want {
		t.Errorf("configHome() = %q, want %q", home, want)
	}
}

// TestLoadConfigFromHomeReadsEnvLocation tests that LoadConfigFromHome
// picks up a config file placed under XDG_CONFIG_HOME
func TestLoadConfigFromHomeReadsEnvLocation(t *testing.T) {
	customHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", customHome)

	configDir := filepath.Join(customHome, "glance")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config directory: %v", err)
	}
	content := []byte("max_columns: 7\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), content, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadConfigFromHome()
	if err != nil {
		t.Fatalf("LoadConfigFromHome() error = %v", err)
	}

	if cfg.MaxColumns != 7 {
		t.Errorf("MaxColumns = %d, want 7", cfg.MaxColumns)
	}
}

// TestLoadConfigFromHomeMissingFile tests defaults when no file exists
func TestLoadConfigFromHomeMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfigFromHome()
	if err != nil {
		t.Fatalf("LoadConfigFromHome() error = %v", err)
	}

	if cfg.MaxColumns != 4 {
		t.Errorf("MaxColumns = %d, want 4 (default)", cfg.MaxColumns)
	}
}
