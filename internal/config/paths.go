package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// LaunchkitDir returns the launchkit config directory path
// ~/.config/launchkit/
func LaunchkitDir() string {
	return filepath.Join(homeDir, ".config", "launchkit")
}

// ConfigPath returns the config.json file path
// ~/.config/launchkit/config.json
func ConfigPath() string {
	return filepath.Join(LaunchkitDir(), "config.json")
}

// RecordPath returns the version.json file path holding the persisted
// update record
// ~/.config/launchkit/version.json
func RecordPath() string {
	return filepath.Join(LaunchkitDir(), "version.json")
}

// DebugLogPath returns the debug.log file path
// ~/.config/launchkit/debug.log
func DebugLogPath() string {
	return filepath.Join(LaunchkitDir(), "debug.log")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
