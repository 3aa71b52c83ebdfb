// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
// It handles both ~ for home directory and $VAR style environment variables.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// ResolveSource expands source and, for the JSON format, appends a .json
// suffix when it is missing.
func ResolveSource(source, format string) string {
	source = ExpandPath(strings.TrimSpace(source))
	if source == "" {
		return ""
	}
	if strings.EqualFold(strings.TrimSpace(format), "json") &&
		!strings.EqualFold(filepath.Ext(source), ".json") {
		source += ".json"
	}
	return source
}
