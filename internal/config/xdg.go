// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "flashcards"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appName, "config.toml")
}

// DefaultDataDir returns the directory bare corpus names are resolved against.
func DefaultDataDir() string {
	return filepath.Join(XDGConfigHome(), appName, "decks")
}

// ResolveDataPath returns path unchanged if it exists or contains a directory
// component, otherwise the same name under DefaultDataDir when present there.
func ResolveDataPath(path string) string {
	if path == "" || filepath.IsAbs(path) || filepath.Base(path) != path {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	candidate := filepath.Join(DefaultDataDir(), path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}
