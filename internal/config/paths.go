// Package config resolves where task-cli looks for its configuration file.
package config

import (
	"os"
	"path/filepath"
)

const (
	// FileName is the config file name without extension.
	FileName = ".task-cli"
	// EnvPrefix prefixes every environment override, e.g. TASK_CLI_DATA_FILE.
	EnvPrefix = "TASK_CLI"
)

// GetGlobalConfigDir returns the user's home directory, where a global
// .task-cli config may live.
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	return os.UserHomeDir()
}

// SearchPaths returns the directories searched for the config file.
// Resolution order (first match wins):
// 1. The working directory
// 2. XDG_CONFIG_HOME/task-cli (if XDG_CONFIG_HOME is set)
// 3. The home directory
func SearchPaths() []string {
	paths := []string{"."}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		paths = append(paths, filepath.Join(xdgConfig, "task-cli"))
	}

	if home, err := GetGlobalConfigDir(); err == nil && home != "" {
		paths = append(paths, home)
	}
	return paths
}
